// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	stdlog "log"
	"sync"

	"github.com/spf13/cobra"

	"github.com/ethersphere/simplelog/pkg/log"
)

func (c *command) initDemoCmd() error {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Register a logger and emit a canned sequence of messages",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := newLoggerBuilder(cmd, c.config)
			if err != nil {
				return err
			}
			logger, err := builder.Init()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			// The package level functions go through the registered logger.
			log.Info("demo started")

			api := log.WithName("api")
			api.Info("listening on :1633")
			api.WithName("store").Debug("cache warmed")

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				log.SetGoroutineName("worker-1")
				defer log.UnsetGoroutineName()
				log.WithName("pipeline").Info("shard uploaded")
			}()
			wg.Wait()

			restore := log.RedirectStdLog(logger)
			defer restore()
			stdlog.Print("routed from the standard library")

			log.Warning("demo finished")
			return nil
		},
	}

	c.setAllFlags(cmd)

	c.root.AddCommand(cmd)
	return nil
}
