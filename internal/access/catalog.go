package access

// descriptions is the static permission-code lookup used by the
// console when the backend catalog carries no human text.
var descriptions = map[string]string{
	"manage_users":       "Create, edit, activate and deactivate user accounts",
	"manage_roles":       "Create and edit roles and their permission sets",
	"manage_policies":    "Create and edit access policies",
	"view_audit":         "Browse the audit log",
	"view_sessions":      "View privileged session records",
	"manage_sessions":    "Start and terminate privileged sessions",
	"view_vault":         "View vault requests",
	"manage_vault":       "Approve, deny and cancel vault requests",
	"reveal_secrets":     "Reveal approved vault secrets",
	"view_incidents":     "View SOC incidents and timelines",
	"manage_incidents":   "Change incident status",
	"soc_actions":        "Execute SOC response actions (block, isolate)",
	"manage_settings":    "Change system settings",
	"view_notifications": "View the notification feed",
}

// Describe returns the human description for a permission code, or
// empty when the code is not in the static table.
func Describe(code string) string {
	return descriptions[code]
}
