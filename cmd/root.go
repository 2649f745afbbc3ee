// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tranvictor/lensens/config"
	"github.com/tranvictor/lensens/networks"
)

var (
	ConfigFile string
	Verbose    bool
	Timeout    time.Duration

	settings = viper.New()
	logger   = zap.NewNop().Sugar()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lensens",
	Short: "Resolve ENS text and contenthash records from Lens profiles",
	Long: `lensens answers ENS text(bytes32,string) and contenthash(bytes32) lookups
without any on-chain resolver records: it asks the ENS registry who owns the
name, then reads the attributes of the first Lens profile owned by that
address. An attribute with key "twitter" answers text(node, "twitter"), the
attribute with key "contenthash" answers contenthash(node).

Names can be given as ENS names (charchar.eth) or as 0x prefixed namehashes.

An RPC url is required. It is taken, in order, from:
	1. --rpc
	2. LENSENS_RPC (env or .env file)
	3. rpc in the --config file
	4. the node env var of the selected network, e.g. ETHEREUM_MAINNET_NODE

Custom networks can be described in ~/.lensens/networks/*.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.NewViper(ConfigFile)
		if err != nil {
			return err
		}
		for key, flag := range map[string]string{
			"network":     "network",
			"rpc":         "rpc",
			"profile_url": "profile-url",
			"registry":    "registry",
		} {
			if err := loaded.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
				return err
			}
		}
		settings = loaded

		if Verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = l.Sugar()
		}

		if home, err := os.UserHomeDir(); err == nil {
			if _, err := networks.LoadCustomNetworks(filepath.Join(home, ".lensens", "networks")); err != nil {
				newUI().Warn("Failed to load custom networks: %s. Continue with built-in networks.", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("network", "k", config.DEFAULT_NETWORK, "ethereum network the ENS registry is read from, e.g. \"homestead\", \"sepolia\".")
	rootCmd.PersistentFlags().String("rpc", "", "RPC url of an ethereum node")
	rootCmd.PersistentFlags().String("profile-url", config.DEFAULT_PROFILE_SERVICE, "Lens API graphql endpoint")
	rootCmd.PersistentFlags().String("registry", config.DEFAULT_REGISTRY_ADDRESS, "ENS registry contract address")
	rootCmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c", "", "config file (yaml, toml or json) with network, rpc, profile_url and registry")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "log every lookup to stderr")
	rootCmd.PersistentFlags().DurationVarP(&Timeout, "timeout", "t", 10*time.Second, "timeout of the whole lookup, 0 means none")
}

// Execute runs the root command and exits with 1 on error.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		u := newUI()
		u.Error("%s", err)
		for _, hint := range errors.GetAllHints(err) {
			u.Warn("%s", hint)
		}
		os.Exit(1)
	}
}
