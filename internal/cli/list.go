package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/oneclick-labs/ymp/internal/config"
	"github.com/oneclick-labs/ymp/internal/ymp"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	listRecommended bool
	listDist        string
	listLang        string
	listOutput      string
)

var listCmd = &cobra.Command{
	Use:   "list <file>...",
	Short: "List repositories declared in .ymp files",
	Long: `Parse one or more One Click Install documents and list their repositories
in document order. Files that are missing or not well-formed XML are reported
in the log and contribute no repositories.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listRecommended, "recommended", false, "Only list recommended repositories")
	listCmd.Flags().StringVar(&listDist, "dist", "", "Only list repositories whose distribution release satisfies a constraint (e.g. \">= 15.0\")")
	listCmd.Flags().StringVar(&listLang, "lang", "", "Locale for names and summaries (e.g. de_DE); overrides the lang setting")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "Output format: table, json or yaml; overrides the output setting")
	rootCmd.AddCommand(listCmd)
}

// fileResult is the structured output for one input file.
type fileResult struct {
	File         string           `json:"file" yaml:"file"`
	Repositories []ymp.Descriptor `json:"repositories" yaml:"repositories"`
}

func runList(cmd *cobra.Command, args []string) error {
	output := listOutput
	if output == "" {
		output = config.Output()
	}
	if !config.ValidOutput(output) {
		return fmt.Errorf("invalid output format %q", output)
	}
	lang := listLang
	if lang == "" {
		lang = config.Lang()
	}

	parser := ymp.NewParser(ymp.WithLogger(currentLogger()))

	results := make([]fileResult, 0, len(args))
	for _, path := range args {
		descriptors := parser.Parse(path)
		if listRecommended {
			descriptors = ymp.Recommended(descriptors)
		}
		descriptors, err := ymp.FilterDist(descriptors, listDist)
		if err != nil {
			return err
		}
		results = append(results, fileResult{File: path, Repositories: descriptors})
	}

	out := cmd.OutOrStdout()
	switch output {
	case config.OutputJSON:
		return printListJSON(out, results)
	case config.OutputYAML:
		return printListYAML(out, results)
	default:
		return printListTable(out, results, lang)
	}
}

func printListTable(out io.Writer, results []fileResult, lang string) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "%s:\n", r.File)
		}
		if len(r.Repositories) == 0 {
			fmt.Fprintf(out, "No repositories found in %s.\n", r.File)
			continue
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ALIAS\tNAME\tDISTRIBUTION\tFORMAT\tRECOMMENDED\tURL")
		for _, d := range r.Repositories {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				d.AliasOr("-"),
				orDash(d.Name.Resolve(lang)),
				orDash(d.DistVersion),
				orDash(d.Format),
				strconv.FormatBool(d.Recommended),
				orDash(d.URL),
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func printListJSON(out io.Writer, results []fileResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling repositories: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func printListYAML(out io.Writer, results []fileResult) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("marshaling repositories: %w", err)
	}
	return enc.Close()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
