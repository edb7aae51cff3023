package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-file-vault/models"
)

// ── identity ──

func newSignUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup <login>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, "Choose a password")
			if err != nil {
				return err
			}
			return app.SignUp(cmd.Context(), args[0], password)
		},
	}
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <login>",
		Short: "Log in and remember the session on this device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, "Password")
			if err != nil {
				return err
			}
			return app.Login(cmd.Context(), args[0], password)
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Logout(cmd.Context())
		},
	}
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Pick a username and create your storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Register(cmd.Context(), args[0])
		},
	}
}

func newWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.WhoAmI(cmd.Context())
		},
	}
}

// ── files ──

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List your files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.ListOwned(cmd.Context())
		},
	}
}

func newSharedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shared",
		Short: "List files shared with you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.ListShared(cmd.Context())
		},
	}
}

func newPutCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "put <path>",
		Short: "Encrypt and upload a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Put(cmd.Context(), args[0], name)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "file name stored in the vault (default: base name of path)")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <ref> [dest]",
		Short: "Download and decrypt a file",
		Long:  "Download a file by id, or by <resource>/<id> for a file shared with you. Use - as dest to write to stdout.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := ""
			if len(args) == 2 {
				dest = args[1]
			}
			return app.Get(cmd.Context(), args[0], dest)
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete one of your files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Remove(cmd.Context(), args[0])
		},
	}
}

// ── sharing ──

func newShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <id> <user>...",
		Short: "Give users read access to a file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Share(cmd.Context(), args[0], args[1:])
		},
	}
}

func newRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <id> <user>...",
		Short: "Take back read access to a file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Revoke(cmd.Context(), args[0], args[1:])
		},
	}
}

func newUsersCmd() *cobra.Command {
	var query models.UsersQuery
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Search the user directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Users(cmd.Context(), query)
		},
	}
	cmd.Flags().StringVarP(&query.Query, "query", "q", "", "username prefix")
	cmd.Flags().IntVar(&query.Offset, "offset", 0, "first user to return")
	cmd.Flags().IntVar(&query.Limit, "limit", 20, "page size")
	return cmd
}

// ── requested uploads ──

func newRequestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "request <file-name>",
		Short: "Ask someone to upload a file for you",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Request(cmd.Context(), args[0])
		},
	}
}

func newClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <ref> <path>",
		Short: "Upload a requested file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Claim(cmd.Context(), args[0], args[1])
		},
	}
}

// ── interactive ──

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse your files in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Browse(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&flagDownloadDir, "download-dir", "", "where downloads are saved (default: working directory)")
	return cmd
}

func newVersionCmd(build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), build.String())
		},
	}
}
