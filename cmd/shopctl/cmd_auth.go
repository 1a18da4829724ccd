package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shopctl/config"
	"github.com/shashiranjanraj/shopctl/pkg/session"
)

var loginPassword string

// shopctl login <username> — authenticate and persist the session.
var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Authenticate against the API and store the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		password := loginPassword
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		sess, err := session.Login(cmd.Context(), config.APIBaseURL(), username, password)
		if err != nil {
			var verr *session.ValidationError
			if errors.As(err, &verr) {
				fields := make([]string, 0, len(verr.Fields))
				for f := range verr.Fields {
					fields = append(fields, f)
				}
				sort.Strings(fields)
				for _, f := range fields {
					fmt.Fprintf(os.Stderr, "%s: %s\n", f, verr.Fields[f])
				}
				return errors.New("login rejected")
			}
			return err
		}

		if err := sess.Save(config.SessionFile()); err != nil {
			return err
		}

		fmt.Printf("Logged in as %s\n", sess.Username)
		return nil
	},
}

// shopctl logout — drop the stored session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.Clear(config.SessionFile()); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

// shopctl whoami — show the current session.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show who is logged in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Load(config.SessionFile())
		if err != nil {
			return err
		}

		fmt.Printf("username: %s\n", sess.Username)
		if c := sess.Claims(); c != nil && c.Name != "" {
			fmt.Printf("name:     %s\n", c.Name)
		}
		if sess.Bypass {
			fmt.Println("mode:     local bypass (no server token)")
		}
		if sess.Expired() {
			fmt.Println("warning:  session token has expired, log in again")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted when omitted)")
}
