package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"striphints/internal/diag"
	"striphints/internal/diagfmt"
	"striphints/internal/driver"
	"striphints/internal/source"
)

var stripCmd = &cobra.Command{
	Use:   "strip [flags] PATH",
	Short: "Strip type hints from a Python file or directory",
	Long: `Strip removes type annotations from the given Python file and prints
the result to stdout (or writes it with -o/--inplace). Given a directory
it processes every *.py file underneath in parallel; directory mode
requires --inplace or --check.`,
	Args: cobra.ExactArgs(1),
	RunE: runStrip,
}

func init() {
	stripCmd.Flags().StringP("outfile", "o", "", "write output to this file instead of stdout")
	stripCmd.Flags().Bool("inplace", false, "overwrite the input file with the stripped code")
	stripCmd.Flags().Bool("to-empty", false, "map removed code to empty strings rather than spaces")
	stripCmd.Flags().Bool("strip-nl", false, "also strip non-logical newlines inside removed hints")
	stripCmd.Flags().Bool("no-colon-move", false, "do not move the colon to fix breaks in return annotations")
	stripCmd.Flags().Bool("no-equal-move", false, "do not move '=' to fix breaks in annotated assignments")
	stripCmd.Flags().Bool("only-defs", false, "strip function signature annotations only")
	stripCmd.Flags().Bool("only-assigns", false, "strip annotated assignments only, keep signatures")
	stripCmd.Flags().Bool("check", false, "only test whether stripping would change anything (exit 1 if not)")
	stripCmd.Flags().Bool("no-validate", false, "skip re-tokenizing the output as a sanity check")
	stripCmd.Flags().Int("jobs", 0, "parallel workers for directory mode (0 = GOMAXPROCS)")
	stripCmd.Flags().String("ui", "auto", "progress UI in directory mode (auto|on|off)")
}

func runStrip(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runStripDir(cmd, path)
	}
	return runStripFile(cmd, path)
}

// buildStripOptions собирает опции: striphints.toml как умолчания,
// явные флаги поверх.
func buildStripOptions(cmd *cobra.Command, startDir string) (driver.Options, int, error) {
	var cfg stripConfig
	if manifest, ok, err := loadProjectManifest(startDir); err != nil {
		return driver.Options{}, 0, err
	} else if ok {
		cfg = manifest.Config.Strip
	}

	flagBool := func(name string, def bool) bool {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetBool(name)
			return v
		}
		return def
	}

	var opts driver.Options
	opts.ToEmpty = flagBool("to-empty", cfg.ToEmpty)
	opts.StripNL = flagBool("strip-nl", cfg.StripNL)
	opts.NoColonMove = flagBool("no-colon-move", cfg.NoColonMove)
	opts.NoEqualMove = flagBool("no-equal-move", cfg.NoEqualMove)
	opts.OnlyDefs = flagBool("only-defs", cfg.OnlyDefs)
	opts.OnlyAssigns = flagBool("only-assigns", cfg.OnlyAssigns)
	opts.Validate = !flagBool("no-validate", cfg.NoValidate)

	if opts.OnlyDefs && opts.OnlyAssigns {
		return driver.Options{}, 0, fmt.Errorf("--only-defs and --only-assigns are mutually exclusive")
	}

	maxDiag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	opts.MaxDiagnostics = maxDiag

	jobs := cfg.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs, _ = cmd.Flags().GetInt("jobs")
	}
	return opts, jobs, nil
}

func runStripFile(cmd *cobra.Command, path string) error {
	opts, _, err := buildStripOptions(cmd, filepath.Dir(path))
	if err != nil {
		return err
	}
	check, _ := cmd.Flags().GetBool("check")

	result, stripErr := driver.StripFile(path, opts)
	if result != nil {
		printDiagnostics(cmd, result.Bag, result.FileSet)
	}
	if stripErr != nil {
		return stripErr
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: input could not be stripped", path)
	}

	if check {
		if result.Changed {
			fmt.Println("True")
			return nil
		}
		fmt.Println("False")
		os.Exit(1)
	}

	outfile, _ := cmd.Flags().GetString("outfile")
	if inplace, _ := cmd.Flags().GetBool("inplace"); inplace {
		outfile = path
	}
	if outfile == "" {
		// Без завершающего перевода строки: выход и так кончается им,
		// если кончался вход.
		fmt.Fprint(os.Stdout, result.Output)
		return nil
	}
	return os.WriteFile(outfile, []byte(result.Output), 0o644)
}

func runStripDir(cmd *cobra.Command, dir string) error {
	opts, jobs, err := buildStripOptions(cmd, dir)
	if err != nil {
		return err
	}
	check, _ := cmd.Flags().GetBool("check")
	inplace, _ := cmd.Flags().GetBool("inplace")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !inplace && !check {
		return fmt.Errorf("directory mode requires --inplace or --check")
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var results []driver.DirResult
	if shouldUseTUI(mode) && !quiet {
		files, listErr := driver.ListPyFiles(dir)
		if listErr != nil {
			return listErr
		}
		results, err = runStripDirWithUI(ctx, "stripping "+dir, files, dir, opts, jobs)
	} else {
		results, err = driver.StripDir(ctx, dir, opts, jobs, driver.NopSink{})
	}
	if err != nil {
		return err
	}

	changed := 0
	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
		case r.Result.Bag.HasErrors():
			failed++
			printDiagnostics(cmd, r.Result.Bag, r.Result.FileSet)
		case r.Result.Changed:
			changed++
			if inplace && !check {
				if werr := os.WriteFile(r.Path, []byte(r.Result.Output), 0o644); werr != nil {
					failed++
					fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, werr)
				}
			}
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "%d files, %d stripped, %d failed\n", len(results), changed, failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	if check {
		if changed > 0 {
			fmt.Println("True")
			return nil
		}
		fmt.Println("False")
		os.Exit(1)
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Dedup()
	bag.Sort()

	if format, _ := cmd.Root().PersistentFlags().GetString("diag-format"); format == "json" {
		_ = diagfmt.JSON(os.Stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
		return
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   1,
		ShowNotes: true,
	})
}
