package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/openimsdk/gonice/internal/util"
	"github.com/openimsdk/gonice/niceutil"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/process"
	"github.com/spf13/cobra"
)

var (
	// BuildTS BuildTS
	BuildTS string
	// GitHash GitHash
	GitHash string
)

var (
	configPath string
	verbose    bool
	execNice   int
)

var rootCmd = &cobra.Command{
	Use:           "nicectl",
	Short:         "Inspect and adjust the scheduling priority of the current process",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Run: func(*cobra.Command, []string) {
		fmt.Printf("Time:\t%s\nVersion:%s\n", BuildTS, GitHash)
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current scheduling priority",
	Long: "Print the niceness of the calling process on Unix, or the raw\n" +
		"priority code of the calling thread on Windows.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := niceutil.GetCurrentProcessPriority()
		if err != nil {
			return err
		}
		fmt.Println(value)
		if verboseEnabled() {
			reportProcess()
		}
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set [value]",
	Short: "Apply a scheduling priority to the current process",
	Long: "Apply a priority value to the calling context: a niceness delta on\n" +
		"Unix, an absolute thread priority code on Windows. Without an argument\n" +
		"the increment from the config file is used (0 when unset).",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		value := cfg.Increment
		if len(args) == 1 {
			value, err = strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("invalid priority value %q", args[0])
			}
		}

		applied, err := niceutil.Nice(value)
		if err != nil {
			return err
		}
		util.PrintGreen(fmt.Sprintf("Priority is now %d", applied))
		if verboseEnabled() {
			reportProcess()
		}
		return nil
	},
}

var execCmd = &cobra.Command{
	Use:   "exec [flags] -- command [args...]",
	Short: "Run a command under an adjusted priority",
	Long: "Renice the nicectl process, then run the command so it inherits the\n" +
		"niceness, the way nice(1) works. nicectl never touches the priority of\n" +
		"an already running process.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		value := cfg.Increment
		if cmd.Flags().Changed("nice") {
			value = execNice
		}

		if _, err := niceutil.Nice(value); err != nil {
			util.PrintYellow(fmt.Sprintf("Failed to set priority %d: %v", value, err))
		}

		child := exec.Command(args[0], args[1:]...)
		child.Env = os.Environ()
		for k, v := range cfg.Env {
			child.Env = append(child.Env, k+"="+v)
		}
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		return child.Run()
	},
}

func verboseEnabled() bool {
	if verbose {
		return true
	}
	cfg, err := loadConfig(configPath)
	return err == nil && cfg.Verbose
}

func reportProcess() {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		util.PrintYellow("Process details unavailable: " + err.Error())
		return
	}
	name, _ := p.Name()
	nice, _ := p.Nice()
	util.PrintBlue(fmt.Sprintf("pid=%d name=%s nice=%d", p.Pid, name, nice))
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a nicectl config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report process details after each command")
	execCmd.Flags().IntVarP(&execNice, "nice", "n", 0, "priority value to apply before running the command")

	rootCmd.AddCommand(versionCmd, getCmd, setCmd, execCmd)
	if err := rootCmd.Execute(); err != nil {
		util.PrintRed(err.Error())
		os.Exit(1)
	}
}
