package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"termsay/internal/decor"
	"termsay/internal/logger"
	"termsay/internal/output"
)

var (
	spinPID    int
	confirmYes bool
)

var spinCmd = &cobra.Command{
	Use:   "spin --pid <pid> [message...]",
	Short: "Animate a spinner while a process is alive",
	RunE: func(cmd *cobra.Command, args []string) error {
		msg := strings.Join(args, " ")
		if msg == "" {
			msg = "Working..."
		}
		logger.Debug("spinner watching process", "pid", spinPID)
		renderer().Spin(cmd.Context(), msg, decor.PIDAlive(spinPID))
		output.Default().MarkPlain()
		return nil
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm [prompt...]",
	Short: "Ask a yes/no question; exits 0 on yes, 1 on no",
	RunE: func(_ *cobra.Command, args []string) error {
		prompt := strings.Join(args, " ")
		if prompt == "" {
			prompt = "Continue?"
		}
		accepted, err := renderer().Confirm(os.Stdin, prompt, confirmYes)
		output.Default().MarkPrompt()
		if err != nil {
			return err
		}
		if !accepted {
			return errDeclined
		}
		return nil
	},
}

func init() {
	spinCmd.Flags().IntVar(&spinPID, "pid", 0, "Process ID to watch")
	if err := spinCmd.MarkFlagRequired("pid"); err != nil {
		panic(err)
	}
	confirmCmd.Flags().BoolVarP(&confirmYes, "default-yes", "y", false, "Accept on empty input")
}
