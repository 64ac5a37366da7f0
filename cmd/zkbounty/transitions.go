package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zkontract/zkbounty/internal/config"
	"github.com/zkontract/zkbounty/internal/infrastructure/storage/gormdb"
	"github.com/zkontract/zkbounty/internal/service"
)

// newBountyService builds a node-backed service that journals every
// submitted transition.
func newBountyService(cfg *config.Config) (*service.BountyService, error) {
	db, err := initDatabase(cfg)
	if err != nil {
		return nil, err
	}
	return service.NewBountyService(
		newChainClient(cfg),
		cfg.Aleo.BountyProgramID,
		service.WithJournal(gormdb.NewTransactionRepository(db)),
	), nil
}

func parseIDs(args []string, names ...string) ([]uint64, error) {
	ids := make([]uint64, len(names))
	for i, name := range names {
		n, err := strconv.ParseUint(args[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s id %q", name, args[i])
		}
		ids[i] = n
	}
	return ids, nil
}

// runTransition prints the transaction id of a submitted transition
func runTransition(cmd *cobra.Command, submit func(*service.BountyService) (string, error)) error {
	svc, err := newBountyService(loadConfig())
	if err != nil {
		return err
	}
	txID, err := submit(svc)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Transaction: %s\n", txID)
	return nil
}

var txFlags struct {
	caller   string
	proposer string
	creator  string
	receiver string
	record   string
	reward   uint64
	amount   uint64
}

var bountyPostCmd = &cobra.Command{
	Use:   "post <bountyId>",
	Short: "Post a bounty with a reward",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args, "bounty")
		if err != nil {
			return err
		}
		return runTransition(cmd, func(svc *service.BountyService) (string, error) {
			return svc.PostBounty(cmd.Context(), txFlags.caller, ids[0], txFlags.reward)
		})
	},
}

var bountyDeleteCmd = &cobra.Command{
	Use:   "delete <bountyId>",
	Short: "Delete a bounty",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args, "bounty")
		if err != nil {
			return err
		}
		return runTransition(cmd, func(svc *service.BountyService) (string, error) {
			return svc.DeleteBounty(cmd.Context(), txFlags.caller, ids[0])
		})
	},
}

var bountyOutputCmd = &cobra.Command{
	Use:   "output <bountyId>",
	Short: "Run view_bounty_by_id and print the mirrored payment and status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args, "bounty")
		if err != nil {
			return err
		}
		svc, err := newBountyService(loadConfig())
		if err != nil {
			return err
		}
		view, err := svc.ViewBountyByID(cmd.Context(), ids[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Payment: %d\n", view.Payment)
		fmt.Fprintf(out, "Status:  %d\n", view.Status)
		return nil
	},
}

var bountyTransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Call the bounty program's transfer function",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(cmd, func(svc *service.BountyService) (string, error) {
			return svc.Transfer(cmd.Context(), txFlags.caller, txFlags.receiver, txFlags.amount)
		})
	},
}

var proposalSubmitCmd = &cobra.Command{
	Use:   "submit <bountyId> <proposalId>",
	Short: "Submit a proposal to a bounty",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args, "bounty", "proposal")
		if err != nil {
			return err
		}
		return runTransition(cmd, func(svc *service.BountyService) (string, error) {
			return svc.SubmitProposal(cmd.Context(), txFlags.caller, ids[0], ids[1], txFlags.proposer)
		})
	},
}

var proposalAcceptCmd = &cobra.Command{
	Use:   "accept <bountyId> <proposalId>",
	Short: "Accept a proposal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args, "bounty", "proposal")
		if err != nil {
			return err
		}
		return runTransition(cmd, func(svc *service.BountyService) (string, error) {
			return svc.AcceptProposal(cmd.Context(), txFlags.caller, ids[0], ids[1], txFlags.creator, txFlags.reward)
		})
	},
}

var proposalDenyCmd = &cobra.Command{
	Use:   "deny <bountyId> <proposalId>",
	Short: "Deny a proposal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args, "bounty", "proposal")
		if err != nil {
			return err
		}
		return runTransition(cmd, func(svc *service.BountyService) (string, error) {
			return svc.DenyProposal(cmd.Context(), txFlags.caller, ids[0], ids[1])
		})
	},
}

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Transfer credits through the node",
}

var creditsPublicCmd = &cobra.Command{
	Use:   "transfer-public",
	Short: "Call credits.aleo/transfer_public",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(cmd, func(svc *service.BountyService) (string, error) {
			return svc.TransferPublic(cmd.Context(), txFlags.receiver, txFlags.amount)
		})
	},
}

var creditsPrivateCmd = &cobra.Command{
	Use:   "transfer-private",
	Short: "Call credits.aleo/transfer_private with a sender record",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newBountyService(loadConfig())
		if err != nil {
			return err
		}
		res, err := svc.TransferPrivate(cmd.Context(), txFlags.record, txFlags.receiver, txFlags.amount)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Transaction:      %s\n", res.TransactionID)
		fmt.Fprintf(out, "Recipient record: %s\n", res.RecipientRecord)
		fmt.Fprintf(out, "Change record:    %s\n", res.SenderRecord)
		return nil
	},
}

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Inspect deployed programs",
}

var programSourceCmd = &cobra.Command{
	Use:   "source [programId]",
	Short: "Print the source of a deployed program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		programID := cfg.Aleo.BountyProgramID
		if len(args) == 1 {
			programID = args[0]
		}

		svc := service.NewBountyService(newChainClient(cfg), cfg.Aleo.BountyProgramID)
		source, err := svc.GetProgramSource(cmd.Context(), programID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), source)
		return nil
	},
}

func init() {
	bountyCmd.AddCommand(bountyPostCmd, bountyDeleteCmd, bountyOutputCmd, bountyTransferCmd)
	proposalCmd.AddCommand(proposalSubmitCmd, proposalAcceptCmd, proposalDenyCmd)
	creditsCmd.AddCommand(creditsPublicCmd, creditsPrivateCmd)
	programCmd.AddCommand(programSourceCmd)

	callerFlag := func(c *cobra.Command) {
		c.Flags().StringVar(&txFlags.caller, "caller", "", "address signing the transition")
		_ = c.MarkFlagRequired("caller")
	}
	for _, c := range []*cobra.Command{bountyPostCmd, bountyDeleteCmd, bountyTransferCmd, proposalSubmitCmd, proposalAcceptCmd, proposalDenyCmd} {
		callerFlag(c)
	}

	bountyPostCmd.Flags().Uint64Var(&txFlags.reward, "reward", 0, "bounty reward")
	_ = bountyPostCmd.MarkFlagRequired("reward")

	proposalSubmitCmd.Flags().StringVar(&txFlags.proposer, "proposer", "", "proposer address")
	_ = proposalSubmitCmd.MarkFlagRequired("proposer")

	proposalAcceptCmd.Flags().StringVar(&txFlags.creator, "creator", "", "bounty creator address")
	proposalAcceptCmd.Flags().Uint64Var(&txFlags.reward, "reward", 0, "bounty reward")
	_ = proposalAcceptCmd.MarkFlagRequired("creator")
	_ = proposalAcceptCmd.MarkFlagRequired("reward")

	for _, c := range []*cobra.Command{bountyTransferCmd, creditsPublicCmd, creditsPrivateCmd} {
		c.Flags().StringVar(&txFlags.receiver, "to", "", "receiving address")
		c.Flags().Uint64Var(&txFlags.amount, "amount", 0, "amount to transfer")
		_ = c.MarkFlagRequired("to")
		_ = c.MarkFlagRequired("amount")
	}

	creditsPrivateCmd.Flags().StringVar(&txFlags.record, "record", "", "plaintext record paying for the transfer")
	_ = creditsPrivateCmd.MarkFlagRequired("record")
}
