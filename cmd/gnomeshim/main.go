package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnomeshim/gnomeshim/internal/launcher"
	glog "github.com/gnomeshim/gnomeshim/internal/log"
	"github.com/gnomeshim/gnomeshim/internal/stubs"
	_ "github.com/gnomeshim/gnomeshim/internal/stubs/all"
	"github.com/gnomeshim/gnomeshim/internal/ui/style"
)

var (
	verbose     bool
	quiet       bool
	handlerPath string
	configPath  string
)

var errOpenFailed = errors.New("handler reported failure")

func main() {
	rootCmd := &cobra.Command{
		Use:   "gnomeshim",
		Short: "Stub libgnome symbols for OpenJDK desktop integration",
		Long: `Gnomeshim stubs the two symbols OpenJDK's AWT Desktop support resolves
via dlopen on Linux: gnome_url_show() from libgnome 2 and gnome_vfs_init()
from GnomeVFS 2. When the real libraries are absent the JDK's probe fails
and Desktop.browse() silently stops working; the stub shared objects make
the probe succeed and delegate URL opening to xdg-open.

This CLI exercises the same code the shared objects run, which makes it
the fastest way to debug a handler setup without touching a JVM.

Examples:
  gnomeshim open https://example.com        # spawn the handler, report result
  gnomeshim open -v bogus://nothing         # verbose diagnostics
  gnomeshim list                            # show stubbed symbols
  gnomeshim vfs-init                        # run the VFS init stub`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			stubs.Debug = verbose
			glog.Init(verbose)
			if verbose {
				stubs.DefaultRegistry.OnCall = func(library, symbol, detail string) {
					fmt.Fprintf(os.Stderr, "%s %s %s\n",
						style.Library(library), style.Symbol(symbol), detail)
				}
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress result output")

	openCmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Open a URL with the desktop URL handler",
		Args:  cobra.ExactArgs(1),
		RunE:  runOpen,
	}
	openCmd.Flags().StringVar(&handlerPath, "handler", "", "handler executable (default "+launcher.DefaultHandler+")")
	openCmd.Flags().StringVar(&configPath, "config", "", "config file (default "+launcher.DefaultConfigPath()+")")
	rootCmd.AddCommand(openCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stubbed symbols",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	rootCmd.AddCommand(listCmd)

	vfsCmd := &cobra.Command{
		Use:   "vfs-init",
		Short: "Run the GnomeVFS init stub",
		Args:  cobra.NoArgs,
		RunE:  runVFSInit,
	}
	rootCmd.AddCommand(vfsCmd)

	if err := rootCmd.Execute(); err != nil {
		if !quiet && !errors.Is(err, errOpenFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func runOpen(cmd *cobra.Command, args []string) error {
	url := args[0]

	var opts []launcher.Option
	if configPath != "" {
		cfg, err := launcher.LoadConfig(configPath)
		if err != nil {
			return err
		}
		opts = append(opts, launcher.WithConfig(cfg))
	}
	// Flags win over environment and config.
	opts = append(opts, launcher.WithHandler(handlerPath), launcher.WithLogger(glog.L))

	l := launcher.FromEnvironment(opts...)
	outcome := l.Open(cmd.Context(), url)
	if outcome.Success() {
		if !quiet {
			fmt.Printf("%s %s\n", style.OK("opened"), url)
		}
		return nil
	}

	if !quiet {
		fmt.Printf("%s %s (%s)\n", style.Fail("failed"), url, outcome.Kind)
	}
	return errOpenFailed
}

func runList(cmd *cobra.Command, args []string) error {
	for _, name := range stubs.List() {
		def, ok := stubs.Lookup(name)
		if !ok {
			continue
		}
		fmt.Printf("%-12s %s  %s\n",
			style.Library(def.Library), style.Symbol(name), def.Doc)
	}
	if !quiet {
		fmt.Printf("%d symbols\n", stubs.DefaultRegistry.Count())
	}
	return nil
}

func runVFSInit(cmd *cobra.Command, args []string) error {
	ok, err := stubs.Call(cmd.Context(), "gnome_vfs_init")
	if err != nil {
		return err
	}
	if !quiet {
		if ok {
			fmt.Println(style.OK("initialized"))
		} else {
			fmt.Println(style.Fail("failed"))
		}
	}
	return nil
}
