package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/finhealth/internal/advisor"
	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/config"
	"github.com/rgehrsitz/finhealth/internal/logging"
)

func (a *app) chatCmd() *cobra.Command {
	var (
		profile  string
		question string
	)

	cmd := &cobra.Command{
		Use:   "chat [input-file]",
		Short: "Ask the AI advisor about a profile",
		Long: `Evaluate a profile and ask the AI advisor about it.

With --question a single answer is printed. Otherwise questions are read from
stdin, one per line, until EOF.

The advisor needs an API key in FINHEALTH_ADVISOR_API_KEY or
OPENROUTER_API_KEY. Without one, or when the provider fails, a fallback reply
is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.NewInputParser().LoadProfile(args[0], profile)
			if err != nil {
				return err
			}

			result := calculation.Evaluate(p.Data)
			session := advisor.NewSession(a.newAdvisor(), p.Data, result)
			session.SetLogger(logging.NewAdapter(a.logger))

			out := cmd.OutOrStdout()
			if question != "" {
				// a failure is logged by the session and answered with the fallback
				reply, _ := session.Ask(cmd.Context(), question)
				fmt.Fprintln(out, reply)
				return nil
			}

			fmt.Fprintln(out, advisor.Greeting(result))
			return a.chatLoop(cmd, session, cmd.InOrStdin(), out)
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Profile name (default: first profile in the file)")
	cmd.Flags().StringVarP(&question, "question", "q", "", "Ask one question and exit")
	return cmd
}

func (a *app) chatLoop(cmd *cobra.Command, session *advisor.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		q := strings.TrimSpace(scanner.Text())
		if q == "" {
			continue
		}
		reply, _ := session.Ask(cmd.Context(), q)
		fmt.Fprintln(out, reply)
	}
}

// newAdvisor returns the OpenRouter client when a key is configured
func (a *app) newAdvisor() advisor.Advisor {
	if a.settings == nil || !a.settings.Advisor.Enabled() {
		return advisor.Disabled{}
	}
	return advisor.NewOpenRouterClient(a.settings.Advisor)
}
