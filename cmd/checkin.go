package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amahle/famcheck/internal/progression"
	"github.com/amahle/famcheck/internal/questionnaire"
	"github.com/amahle/famcheck/internal/scoring"
	"github.com/amahle/famcheck/internal/store"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Run the household questionnaire flow",
	Long:  "Walks every subject through the check-up, parent and family questionnaires, resuming any run left in progress.",
	RunE:  runCheckin,
}

func init() {
	checkinCmd.Flags().String("cutoffs", "", "Path to a YAML cutoff table (defaults to the embedded table)")
	checkinCmd.Flags().String("skip-policy", "zero", "How skipped questions score: zero or exclude")
}

// buildEngine constructs the scoring engine from the command's cutoff and
// skip-policy flags.
func buildEngine(cmd *cobra.Command) (*scoring.Engine, error) {
	var table *scoring.CutoffTable
	var err error
	if path, _ := cmd.Flags().GetString("cutoffs"); path != "" {
		table, err = scoring.LoadCutoffs(path)
	} else {
		table, err = scoring.DefaultCutoffs()
	}
	if err != nil {
		return nil, err
	}

	policy := scoring.SkipCountsZero
	switch p, _ := cmd.Flags().GetString("skip-policy"); p {
	case "", "zero":
	case "exclude":
		policy = scoring.SkipExcluded
	default:
		return nil, fmt.Errorf("unknown skip policy %q (want zero or exclude)", p)
	}
	return scoring.NewEngine(table, policy), nil
}

func runCheckin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, household, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	engine, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	ctrl := progression.NewController(
		st.ProfileRepo(),
		st.AssessmentRepo(),
		st.AnswerRepo(),
		engine,
		st.EventRepo(),
	)

	in := bufio.NewScanner(os.Stdin)

	typ := store.TypeCheckup
	for {
		subjects, err := ctrl.Subjects(ctx, household, typ)
		if err != nil {
			return err
		}

		if len(subjects) > 0 {
			sess, err := ctrl.Begin(ctx, subjects[0].ID, typ)
			if err != nil {
				return err
			}
			for {
				if err := runSession(ctx, ctrl, sess, in); err != nil {
					return err
				}
				if sess.State != progression.StateAwaitingNextSubject {
					break
				}
				sess, err = ctrl.AdvanceToNextSubject(ctx, sess)
				if err != nil {
					return err
				}
			}
		}

		next, ok := questionnaire.NextFlow(typ)
		if !ok {
			break
		}
		typ = next
	}

	color.New(color.FgGreen, color.Bold).Println("All check-ins complete.")
	fmt.Println("Run `famcheck report` to see the household report.")
	return nil
}

// runSession walks one subject through their flow until it completes or
// hands over to the next subject.
func runSession(ctx context.Context, ctrl *progression.Controller, sess *progression.Session, in *bufio.Scanner) error {
	color.New(color.FgCyan, color.Bold).Printf("\n%s — subject %s\n", sess.Flow.Title, shortID(sess.ProfileID))

	if sess.Step > 0 {
		saved, err := ctrl.Hydrate(ctx, sess)
		if err == nil && len(saved) > 0 {
			fmt.Printf("Resuming: %d answer(s) already saved, continuing at question %d of %d.\n",
				len(saved), sess.Step+1, sess.Flow.TotalSteps())
		}
	}

	for sess.State == progression.StateInProgress || sess.State == progression.StateInterlude {
		if sess.State == progression.StateInterlude {
			color.New(color.FgYellow).Println("\nTime for a short break. You're doing great — the remaining questions ask about day-to-day impact.")
			fmt.Print("Press Enter to continue... ")
			in.Scan()
			if err := ctrl.AcknowledgeInterlude(ctx, sess); err != nil {
				return err
			}
			continue
		}

		q, err := sess.Flow.QuestionAt(sess.Step)
		if err != nil {
			return err
		}

		fmt.Printf("\n[%d/%d] %s\n", sess.Step+1, sess.Flow.TotalSteps(), q.Text)
		for i, label := range scaleLabels(q.AnswerType) {
			fmt.Printf("  %d) %s\n", i, label)
		}
		fmt.Print("Answer (or s to skip): ")

		if !in.Scan() {
			return fmt.Errorf("input closed mid-session")
		}
		line := strings.TrimSpace(in.Text())

		if strings.EqualFold(line, "s") {
			if err := ctrl.Skip(ctx, sess); err != nil {
				return err
			}
			continue
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println("Please enter one of the numbers above, or s to skip.")
			continue
		}
		if err := ctrl.Submit(ctx, sess, value); err != nil {
			if _, ok := err.(*progression.ValidationError); ok {
				fmt.Println(err)
				continue
			}
			return err
		}
	}

	switch sess.State {
	case progression.StateAwaitingNextSubject:
		fmt.Println("\nDone — handing over to the next subject.")
	case progression.StateCompleted:
		fmt.Println("\nQuestionnaire complete.")
	}
	return nil
}

// scaleLabels returns the display labels for an answer scale, indexed by value.
func scaleLabels(answerType string) []string {
	switch answerType {
	case questionnaire.ScaleLikert5:
		return []string{"Not at all", "Rarely", "Sometimes", "Often", "Always"}
	case questionnaire.ScaleImpact4:
		return []string{"Not at all", "Only a little", "Quite a lot", "A great deal"}
	case questionnaire.ScaleYesNo:
		return []string{"No", "Yes"}
	case questionnaire.ScaleAgree6:
		return []string{"Strongly disagree", "Disagree", "Slightly disagree", "Slightly agree", "Agree", "Strongly agree"}
	}
	return nil
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
