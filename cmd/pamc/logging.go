package main

import (
	"sync"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/logging"
)

// annotationStructuredLog marks commands whose diagnostics go through
// the structured logger instead of plain stderr. Long-running modes
// (serve, watch) set it; interactive commands stay plain.
const annotationStructuredLog = "pamc_structured_log"

type commandExecutionContext struct {
	CommandPath       string
	UsesStructuredLog bool
}

var (
	execContextMu sync.Mutex
	execContext   commandExecutionContext
)

func setCommandExecutionContext(ctx commandExecutionContext) {
	execContextMu.Lock()
	defer execContextMu.Unlock()
	execContext = ctx
}

func currentCommandExecutionContext() commandExecutionContext {
	execContextMu.Lock()
	defer execContextMu.Unlock()
	return execContext
}

func resetCommandExecutionContext() {
	setCommandExecutionContext(commandExecutionContext{})
}

func structuredLogAnnotation() map[string]string {
	return map[string]string{annotationStructuredLog: "true"}
}

func commandUsesStructuredLogging(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationStructuredLog] == "true"
}

// bootstrapCommandLogging records the execution context for the fatal
// path and installs the structured logger when the command asks for it.
func bootstrapCommandLogging(cmd *cobra.Command) error {
	ctx := commandExecutionContext{
		CommandPath:       cmd.CommandPath(),
		UsesStructuredLog: commandUsesStructuredLogging(cmd),
	}
	setCommandExecutionContext(ctx)

	if !ctx.UsesStructuredLog {
		return nil
	}
	_, err := logging.BootstrapFromEnv(logging.BootstrapOptions{Command: ctx.CommandPath})
	return err
}
