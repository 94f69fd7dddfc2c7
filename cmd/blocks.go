package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"fastcat.org/go/matchpick/matchcase"
)

func init() {
	addCommandBuilders(blocksCmd)
}

func blocksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks [file]",
		Short: "List the match blocks and cases of the input",
		Long: "Checks the input for structural errors and shows every match block " +
			"with its cases, marking the case the current --match labels select.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			blocks, err := matchcase.Outline(text, s.Options())
			if err != nil {
				return err
			}
			renderBlocks(cmd.OutOrStdout(), blocks)
			return nil
		},
	}
}

func renderBlocks(out io.Writer, blocks []matchcase.Block) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Block", "Lines", "Case", "Labels", "Body", "Selected"})
	for i, b := range blocks {
		if i > 0 {
			tw.AppendSeparator()
		}
		end := "EOF"
		if b.End > 0 {
			end = strconv.Itoa(b.End)
		}
		span := strconv.Itoa(b.Start) + "-" + end
		tw.AppendRow(table.Row{i + 1, span, b.Start, "(default)", b.Default, selectedMark(b.UsesDefault())})
		for _, c := range b.Cases {
			tw.AppendRow(table.Row{"", "", c.Line, strings.Join(c.Labels, " "), c.Lines, selectedMark(c.Selected)})
		}
	}
	tw.AppendFooter(table.Row{"", "", "", "", "blocks", len(blocks)})
	tw.Render()
}

func selectedMark(b bool) string {
	if b {
		return "*"
	}
	return ""
}
