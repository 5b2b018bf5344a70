package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/tuannh982/linked-collections/utils/collections"
)

func newStackCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "stack [items...]",
		Short: "Push every item, then pop until empty",
		RunE: func(command *cobra.Command, args []string) error {
			logger, err := newLogger(v, command)
			if err != nil {
				return err
			}
			s := collections.NewStack[string]()
			entry := logger.WithField("container", "stack")
			for _, item := range args {
				s.Push(item)
				entry.WithFields(log.Fields{"item": item, "size": s.Size()}).Debug("push")
			}
			return drain(command.OutOrStdout(), entry, s.Pop, s.IsEmpty)
		},
	}
}

func newQueueCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "queue [items...]",
		Short: "Enqueue every item, then dequeue until empty",
		RunE: func(command *cobra.Command, args []string) error {
			logger, err := newLogger(v, command)
			if err != nil {
				return err
			}
			q := collections.NewQueue[string]()
			entry := logger.WithField("container", "queue")
			for _, item := range args {
				q.Enqueue(item)
				entry.WithFields(log.Fields{"item": item, "size": q.Size()}).Debug("enqueue")
			}
			return drain(command.OutOrStdout(), entry, q.Dequeue, q.IsEmpty)
		},
	}
}

func newBagCommand(v *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:   "bag [items...]",
		Short: "Add every item, then print the bag contents",
		PreRun: func(command *cobra.Command, _ []string) {
			mustBindPFlag(v, sortedFlag, command.Flag(sortedFlag))
		},
		RunE: func(command *cobra.Command, args []string) error {
			logger, err := newLogger(v, command)
			if err != nil {
				return err
			}
			b := collections.NewBag[string]()
			entry := logger.WithField("container", "bag")
			for _, item := range args {
				b.Add(item)
				entry.WithFields(log.Fields{"item": item, "size": b.Size()}).Debug("add")
			}
			items := b.Entries()
			if v.GetBool(sortedFlag) {
				slices.Sort(items)
			}
			out := command.OutOrStdout()
			for _, item := range items {
				if _, err := fmt.Fprintln(out, item); err != nil {
					return err
				}
			}
			entry.WithField("size", b.Size()).Info("done")
			return nil
		},
	}
	command.Flags().Bool(sortedFlag, false, "print bag contents in sorted order")
	return command
}

// drain removes items until the container reports empty, writing each one
// to out in removal order.
func drain(out io.Writer, entry *log.Entry, remove func() (string, error), isEmpty func() bool) error {
	n := 0
	for !isEmpty() {
		item, err := remove()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, item); err != nil {
			return err
		}
		n++
	}
	entry.WithField("removed", n).Info("done")
	return nil
}
