package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/InVisionApp/tabular"
	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/kyokomi/emoji"
	log "github.com/sirupsen/logrus"

	"github.com/rmedina/sanipath"
)

func startSpinner(message string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Color("magenta")
	s.Start()
	return s
}

func main() {
	nodeMode := flag.Bool("node", false, "Treat each argument as a single path segment instead of a full path")
	isFile := flag.Bool("file", false, "Assert that the terminal segment names a file")
	isDir := flag.Bool("dir", false, "Assert that the terminal segment names a directory")
	fat := flag.Bool("fat", false, "Also guard names reserved by FAT filesystems")
	trim := flag.Bool("trim", false, "Truncate over-length segments instead of failing")
	quiet := flag.Bool("quiet", false, "Suppress warnings about rewritten input")
	renameRoot := flag.String("rename", "", "Scan a directory tree and plan renames for unsafe entries")
	apply := flag.Bool("apply", false, "Perform the renames planned by -rename")
	flag.Parse()

	if *isFile && *isDir {
		fmt.Println("-file and -dir are mutually exclusive.")
		os.Exit(1)
	}

	hint := sanipath.HintUnknown
	if *isFile {
		hint = sanipath.HintYes
	} else if *isDir {
		hint = sanipath.HintNo
	}

	policy := sanipath.PolicyConfig{FATCompatible: *fat, TrimToLimit: *trim, Quiet: *quiet}

	if *renameRoot != "" {
		runRename(*renameRoot, policy, *apply)
		return
	}

	warn := func(msg string) { log.Warn(msg) }
	if *quiet {
		warn = nil
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Println("Failed to read standard input: " + err.Error())
			os.Exit(1)
		}
	}

	for _, input := range inputs {
		var sanitized string
		var err error
		if *nodeMode {
			sanitized, err = sanipath.SanitizeNode(input, sanipath.NodeOptions{
				IsFile:        hint,
				FATCompatible: policy.FATCompatible,
				TrimToLimit:   policy.TrimToLimit,
			})
			if err == nil && warn != nil && sanitized != input {
				warn(fmt.Sprintf("sanitized segment %q -> %q", input, sanitized))
			}
		} else {
			opts := policy.Options()
			opts.IsFile = hint
			opts.Warn = warn
			sanitized, err = sanipath.SanitizePath(input, opts)
		}
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		fmt.Println(sanitized)
	}
}

func runRename(root string, policy sanipath.PolicyConfig, apply bool) {
	s := startSpinner("Scanning " + root)
	plan, err := sanipath.PlanRenames(root, policy)
	s.Stop()
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

	if len(plan.Renames) == 0 {
		emoji.Println(":ok: All " + humanize.Comma(int64(plan.Scanned)) + " entries are already safe")
		return
	}

	tab := tabular.New()
	tab.Col("old", "Original", 48)
	tab.Col("new", "Sanitized", 48)
	format := tab.Print("old", "new")
	for _, r := range plan.Renames {
		fmt.Printf(format, r.OldPath, r.NewPath)
	}

	if !apply {
		emoji.Println(":mag: " + humanize.Comma(int64(len(plan.Renames))) +
			" of " + humanize.Comma(int64(plan.Scanned)) +
			" entries need renaming. Re-run with -apply to rename them.")
		return
	}

	applied, err := plan.Apply()
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
	emoji.Println(":ok: Renamed " + humanize.Comma(int64(applied)) + " entries")
}
