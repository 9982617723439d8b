package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amahle/famcheck/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage household members",
}

var profileAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a household member",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, household, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		typ, _ := cmd.Flags().GetString("type")
		switch store.ProfileType(typ) {
		case store.ProfileParent, store.ProfileChild, store.ProfilePartner,
			store.ProfileSibling, store.ProfileCaregiver, store.ProfileOther:
		default:
			return fmt.Errorf("unknown profile type %q", typ)
		}

		p := &store.Profile{
			HouseholdID: household,
			Type:        store.ProfileType(typ),
		}

		if dob, _ := cmd.Flags().GetString("dob"); dob != "" {
			t, err := time.Parse("2006-01-02", dob)
			if err != nil {
				return fmt.Errorf("parse --dob: %w", err)
			}
			p.DateOfBirth = &t
		}

		if worries, _ := cmd.Flags().GetString("worry"); worries != "" {
			for _, w := range strings.Split(worries, ",") {
				if w = strings.TrimSpace(w); w != "" {
					p.WorryTags = append(p.WorryTags, w)
				}
			}
		}

		if err := st.ProfileRepo().Create(cmd.Context(), p); err != nil {
			return err
		}
		fmt.Println("Added", p.Type, p.ID)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List household members",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, household, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profiles, err := st.ProfileRepo().List(cmd.Context(), household)
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles yet. Add one with `famcheck profile add --type child`.")
			return nil
		}
		for _, p := range profiles {
			line := fmt.Sprintf("%s  %-9s added %s", p.ID, p.Type, p.CreatedAt.Format("2006-01-02"))
			if len(p.WorryTags) > 0 {
				line += "  worries: " + strings.Join(p.WorryTags, ", ")
			}
			fmt.Println(line)
		}
		return nil
	},
}

var profileRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a household member (their completed check-ins are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ProfileRepo().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Removed", args[0])
		return nil
	},
}

func init() {
	profileAddCmd.Flags().String("type", "child", "Member type: parent, child, partner, sibling, caregiver, other")
	profileAddCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	profileAddCmd.Flags().String("worry", "", "Comma-separated worry tags")

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileRmCmd)
}
