package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/usecase/lock"
	"github.com/spf13/cobra"
)

func locksCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locks",
		Short: "Inspect and maintain payment reservations",
	}

	cmd.AddCommand(locksListCmd(open))
	cmd.AddCommand(locksSweepCmd(open))
	cmd.AddCommand(locksReleaseCmd(open))

	return cmd
}

func lockManager(a *app) *lock.Manager {
	return lock.NewManager(a.manager.CreateUnitOfWork(), a.timeProvider, a.logger)
}

func locksListCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reservations that have not expired",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app) error {
				locks, err := lockManager(a).ListActive(ctx)
				if err != nil {
					return err
				}
				if len(locks) == 0 {
					fmt.Fprintln(a.out, "No active locks")
					return nil
				}

				now := a.timeProvider.Now()
				w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "RESOURCE\tID\tTRANSACTION\tLOCKED AT\tEXPIRES IN")
				for _, l := range locks {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
						l.ResourceType,
						l.ResourceID,
						l.TransactionID,
						l.LockedAt.UTC().Format(time.RFC3339),
						l.ExpiresAt.Sub(now).Truncate(time.Second),
					)
				}
				return w.Flush()
			})
		},
	}
}

func locksSweepCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete expired reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app) error {
				removed, err := lockManager(a).Sweep(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Removed %d expired locks\n", removed)
				return nil
			})
		},
	}
}

func locksReleaseCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "release <transaction-id>",
		Short: "Release every reservation held by a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || transactionID == 0 {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			return withApp(cmd, open, func(ctx context.Context, a *app) error {
				released, err := lockManager(a).Release(ctx, transactionID)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Released %d locks for transaction %d\n", released, transactionID)
				return nil
			})
		},
	}
}
