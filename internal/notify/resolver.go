package notify

import (
	"encoding/json"
	"strings"
)

// Backend action codes the resolver renders with dedicated copy.
const (
	ActionLoginSuccess = "LOGIN_SUCCESS"
	ActionLoginFail    = "LOGIN_FAIL"
	ActionMFAFail      = "MFA_FAIL"

	ActionRoleAssigned   = "ROLE_ASSIGNED"
	ActionRoleUnassigned = "ROLE_UNASSIGNED"

	ActionPolicyAttached = "POLICY_ATTACHED"
	ActionPolicyDetached = "POLICY_DETACHED"

	ActionUserBlocked     = "SOC_USER_BLOCKED"
	ActionSessionIsolated = "SOC_SESSION_ISOLATED"

	ActionVaultApproved = "VAULT_REQUEST_APPROVED"
	ActionVaultDenied   = "VAULT_REQUEST_DENIED"
)

// details is the superset of fields the known action codes put into
// the audit details blob.
type details struct {
	UserID    int64  `json:"user_id,omitempty"`
	RoleID    int64  `json:"role_id,omitempty"`
	PolicyID  int64  `json:"policy_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Text      string `json:"text,omitempty"`
	Raw       string `json:"raw,omitempty"`
}

// Resolve renders a backend audit code as a display sentence. Unknown
// codes fall back to the raw code; the function is fail-soft and
// never panics outward because this output is cosmetic.
func Resolve(action string, rawDetails json.RawMessage, cache *Context) (out string) {
	defer func() {
		if recover() != nil {
			out = "Событие безопасности"
		}
	}()

	if cache == nil {
		cache = &Context{}
	}
	action = strings.TrimSpace(action)

	var d details
	if len(rawDetails) > 0 {
		// A malformed blob is not an error: the resolver falls
		// through to the generic forms below.
		_ = json.Unmarshal(rawDetails, &d)
	}

	switch action {
	case ActionLoginSuccess:
		return "Пользователь " + cache.UserName(d.UserID) + " вошёл в систему"
	case ActionLoginFail:
		return "Неудачная попытка входа: " + cache.UserName(d.UserID)
	case ActionMFAFail:
		return "Неудачная проверка MFA: " + cache.UserName(d.UserID)
	case ActionRoleAssigned:
		return "Пользователю " + cache.UserName(d.UserID) + " назначена роль " + cache.RoleName(d.RoleID)
	case ActionRoleUnassigned:
		return "У пользователя " + cache.UserName(d.UserID) + " отозвана роль " + cache.RoleName(d.RoleID)
	case ActionPolicyAttached:
		return "К роли " + cache.RoleName(d.RoleID) + " привязана политика " + cache.PolicyName(d.PolicyID)
	case ActionPolicyDetached:
		return "От роли " + cache.RoleName(d.RoleID) + " отвязана политика " + cache.PolicyName(d.PolicyID)
	case ActionUserBlocked:
		return "SOC: пользователь " + cache.UserName(d.UserID) + " заблокирован"
	case ActionSessionIsolated:
		return "SOC: сессия " + d.SessionID + " изолирована"
	case ActionVaultApproved:
		return "Запрос к хранилищу одобрен для " + cache.UserName(d.UserID)
	case ActionVaultDenied:
		return "Запрос к хранилищу отклонён для " + cache.UserName(d.UserID)
	}

	if text := strings.TrimSpace(d.Text); text != "" {
		return text
	}
	if raw := strings.TrimSpace(d.Raw); raw != "" {
		return raw
	}
	return "Событие: " + action
}
