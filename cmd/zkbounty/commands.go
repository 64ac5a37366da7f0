package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/storage/gormdb"
	"github.com/zkontract/zkbounty/internal/service"
)

var bountyCmd = &cobra.Command{
	Use:   "bounty",
	Short: "Inspect and manage bounties",
}

var bountyViewCmd = &cobra.Command{
	Use:   "view <bountyId>",
	Short: "Show the on-chain state of a bounty",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bountyID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid bounty id %q", args[0])
		}

		cfg := loadConfig()
		reader := service.NewMappingReader(newChainClient(cfg), cfg.Aleo.BountyProgramID)

		data, err := reader.ReadParsedBounty(cmd.Context(), bountyID)
		if err != nil {
			return err
		}
		sr, err := reader.FetchBountyStatusAndReward(cmd.Context(), bountyID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Bounty:  %d\n", bountyID)
		fmt.Fprintf(out, "Creator: %s\n", data.Creator)
		fmt.Fprintf(out, "Payment: %d\n", data.Payment)
		fmt.Fprintf(out, "Status:  %s\n", data.Status)
		fmt.Fprintf(out, "Reward:  %s\n", sr.Reward)
		return nil
	},
}

var proposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Inspect and manage proposals",
}

var proposalViewCmd = &cobra.Command{
	Use:   "view <bountyId> <proposalId>",
	Short: "Show the on-chain mappings of a proposal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bountyID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid bounty id %q", args[0])
		}
		proposalID, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid proposal id %q", args[1])
		}

		cfg := loadConfig()
		reader := service.NewMappingReader(newChainClient(cfg), cfg.Aleo.BountyProgramID)

		m, err := reader.ReadProposalMappings(cmd.Context(), bountyID, proposalID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Composite id: %s\n", service.CompositeProposalID(bountyID, proposalID))
		fmt.Fprintf(out, "Bounty:       %s\n", m.ProposalBountyID)
		fmt.Fprintf(out, "Proposer:     %s\n", m.ProposalProposer)
		fmt.Fprintf(out, "Status:       %s\n", m.ProposalStatus)
		return nil
	},
}

var feeCmd = &cobra.Command{
	Use:   "fee <function>",
	Short: "Print the fee of a credits function in microcredits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fee, err := service.FeeFor(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d microcredits\n", args[0], fee)
		return nil
	},
}

var rewardCmd = &cobra.Command{
	Use:   "reward",
	Short: "Pay proposal rewards",
}

var rewardFlags struct {
	bountyID   uint64
	proposalID uint64
	recipient  string
	amount     uint64
	private    bool
}

var rewardSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Transfer a reward to a proposer and mark it sent",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := loadConfig()

		db, err := initDatabase(cfg)
		if err != nil {
			return err
		}

		policy := newPolicyProvider(ctx, cfg)
		defer policy.Close(ctx)

		engine := newTransferEngine(cfg, policy, gormdb.NewTransactionRepository(db))

		req := service.RewardTransfer{
			Recipient:  rewardFlags.recipient,
			Reward:     rewardFlags.amount,
			BountyID:   rewardFlags.bountyID,
			ProposalID: rewardFlags.proposalID,
		}

		events := make(chan domain.TransferEvent)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for ev := range events {
				fmt.Fprintln(cmd.OutOrStdout(), ev.Message)
			}
		}()

		send := engine.PublicTransfer
		if rewardFlags.private {
			send = engine.PrivateTransfer
		}
		res, err := send(ctx, req, service.ChannelObserver(ctx, events))
		close(events)
		<-done

		if res != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction: %s\n", res.TransactionID)
		}
		return err
	},
}

func init() {
	bountyCmd.AddCommand(bountyViewCmd)
	proposalCmd.AddCommand(proposalViewCmd)
	rewardCmd.AddCommand(rewardSendCmd)

	f := rewardSendCmd.Flags()
	f.Uint64Var(&rewardFlags.bountyID, "bounty", 0, "bounty id")
	f.Uint64Var(&rewardFlags.proposalID, "proposal", 0, "proposal id")
	f.StringVar(&rewardFlags.recipient, "recipient", "", "proposer address")
	f.Uint64Var(&rewardFlags.amount, "amount", 0, "reward in credits")
	f.BoolVar(&rewardFlags.private, "private", false, "pay from a private record")
	_ = rewardSendCmd.MarkFlagRequired("recipient")
	_ = rewardSendCmd.MarkFlagRequired("amount")
}
