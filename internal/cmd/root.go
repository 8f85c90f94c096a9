// Package cmd is for command line interactions with the refgenome
// application.
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use: "refgenome",
	Short: `Import FASTA references into a single flat, padded genome.
Contigs are separated by 'n' filler runs so fixed-offset location
arithmetic never matches across contig boundaries`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and runs it,
// returning a process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("terminators", "", "characters that end a contig name, besides whitespace and line ends")
	pf.Bool("space-ends-name", true, "treat space and tab as contig-name terminators")
	pf.Int("padding", 100, "number of 'n' filler bases inserted around every contig")
	pf.String("tag", "", "extract contig names from a '|TAG|value|' header field")
	pf.String("chrmap", "", "path to a contig-name alias file")
	pf.String("altmap", "", "path to an alternate-locus map file")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	cobra.CheckErr(viper.BindPFlags(pf))

	// Optional refgenome.yaml in the working directory; flags win.
	viper.SetConfigName("refgenome")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()
}
