package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/card"
)

// themesCommand creates the themes command for listing and picking themes.
func (c *CLI) themesCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List color themes and card types",
		Long: `List the available color themes with their palettes.

With --pick an interactive picker opens; the selected theme name is
printed so it can be dropped into a card URL or command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pick {
				return runThemePicker()
			}
			printThemeTable()
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "pick a theme interactively")

	return cmd
}

// printThemeTable prints every theme with color swatches.
func printThemeTable() {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, name := range card.ThemeNames() {
		t := card.LookupTheme(name)
		rows = append(rows, []string{name, swatch(t.Background), swatch(t.Title), swatch(t.Accent), swatch(t.Text)})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Theme", "Background", "Title", "Accent", "Text").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(tbl.Render())
	printInfo("Card types: %s", strings.Join(card.TypeNames(), ", "))
	printNewline()
	printNextStep("Preview a theme", "activitycard card <username> --theme dark")
}

// swatch renders a colored block next to its hex code.
func swatch(hex string) string {
	block := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
	return block + " " + StyleDim.Render(hex)
}

// runThemePicker opens the interactive picker and prints the selection.
func runThemePicker() error {
	final, err := tea.NewProgram(NewThemeListModel(card.ThemeNames())).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(ThemeListModel)
	if !ok || m.Selected == "" {
		printInfo("No theme selected")
		return nil
	}

	printSuccess("Selected theme: %s", StyleHighlight.Render(m.Selected))
	printNextStep("Render with it", fmt.Sprintf("activitycard card <username> --theme %s", m.Selected))
	return nil
}
