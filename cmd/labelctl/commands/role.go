package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hypehouse-backend/cmd/labelctl/output"
	"hypehouse-backend/internal/domains/auth/model"
	authService "hypehouse-backend/internal/domains/auth/service"
)

var (
	roleEmail string
	roleName  string
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Grant, revoke and list user roles",
}

var roleGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Grant a role to a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAuth(cmd.Context(), func(svc authService.ServiceInterface) error {
			if err := svc.GrantRole(cmd.Context(), roleEmail, model.Role(roleName)); err != nil {
				return err
			}
			output.Success("Granted %s to %s", roleName, roleEmail)
			return nil
		})
	},
}

var roleRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Revoke a role from a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAuth(cmd.Context(), func(svc authService.ServiceInterface) error {
			removed, err := svc.RevokeRole(cmd.Context(), roleEmail, model.Role(roleName))
			if err != nil {
				return err
			}
			if !removed {
				output.Warning("%s did not have role %s", roleEmail, roleName)
				return nil
			}
			output.Success("Revoked %s from %s", roleName, roleEmail)
			return nil
		})
	},
}

var roleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List role assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAuth(cmd.Context(), func(svc authService.ServiceInterface) error {
			roles, err := svc.ListRoles(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(roles)
			}

			if len(roles) == 0 {
				output.Warning("No role assignments")
				return nil
			}
			output.Section("Roles")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "EMAIL\tROLE\tGRANTED AT")
			for _, r := range roles {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Email, r.Role, r.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(roleCmd)
	roleCmd.AddCommand(roleGrantCmd, roleRevokeCmd, roleListCmd)

	for _, c := range []*cobra.Command{roleGrantCmd, roleRevokeCmd} {
		c.Flags().StringVar(&roleEmail, "email", "", "Email của user")
		c.Flags().StringVar(&roleName, "role", string(model.RoleAdmin), "admin | user")
		_ = c.MarkFlagRequired("email")
	}
}
