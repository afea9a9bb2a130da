package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/params"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/update-addresses/internal/domain/config"
	"github.com/trebuchet-org/update-addresses/internal/domain/models"
	"github.com/trebuchet-org/update-addresses/internal/usecase"
	"gopkg.in/yaml.v3"
)

// AddressesRenderer renders the outcome of an address update
type AddressesRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewAddressesRenderer creates a new addresses renderer
func NewAddressesRenderer(out io.Writer, format config.OutputFormat) *AddressesRenderer {
	return &AddressesRenderer{
		out:    out,
		format: format,
	}
}

// updateView is the machine readable form of an update result
type updateView struct {
	ChainID   string                 `json:"chainId" yaml:"chainId"`
	Network   string                 `json:"network,omitempty" yaml:"network,omitempty"`
	Path      string                 `json:"path" yaml:"path"`
	Written   bool                   `json:"written" yaml:"written"`
	Addresses map[string]string      `json:"addresses" yaml:"addresses"`
	Changes   []models.AddressChange `json:"changes" yaml:"changes"`
}

// RenderUpdate renders the update result in the configured format
func (r *AddressesRenderer) RenderUpdate(result *usecase.UpdateAddressesResult) error {
	switch r.format {
	case config.OutputJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(newUpdateView(result))
	case config.OutputYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(newUpdateView(result)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return r.renderTable(result)
	}
}

func newUpdateView(result *usecase.UpdateAddressesResult) updateView {
	return updateView{
		ChainID:   result.ChainID,
		Network:   NetworkName(result.ChainID),
		Path:      result.Path,
		Written:   result.Written,
		Addresses: result.Addresses,
		Changes:   result.Changes,
	}
}

func (r *AddressesRenderer) renderTable(result *usecase.UpdateAddressesResult) error {
	fmt.Fprintf(r.out, "📒 %s → %s\n\n", chainLabel(result.ChainID), result.Path)

	changed := lo.SliceToMap(result.Changes, func(c models.AddressChange) (string, models.AddressChange) {
		return c.Name, c
	})

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	for _, name := range result.Addresses.Names() {
		address := result.Addresses[name]
		marker := ""
		if change, ok := changed[name]; ok {
			marker = formatChange(change)
		}
		t.AppendRow(table.Row{name, address, marker})
	}

	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	added := lo.CountBy(result.Changes, func(c models.AddressChange) bool { return c.Kind == models.ChangeAdded })
	updated := lo.CountBy(result.Changes, func(c models.AddressChange) bool { return c.Kind == models.ChangeUpdated })
	summary := fmt.Sprintf("%d added, %d updated, %d total", added, updated, len(result.Addresses))

	if result.Written {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Wrote %s (%s)", result.Path, summary)))
	} else {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Dry run: %s not written (%s)", result.Path, summary)))
	}

	return nil
}

func formatChange(change models.AddressChange) string {
	switch change.Kind {
	case models.ChangeAdded:
		return color.New(color.FgGreen).Sprint("+ added")
	case models.ChangeUpdated:
		return color.New(color.FgYellow).Sprintf("~ was %s", change.OldAddress)
	default:
		return color.New(color.Faint).Sprint("= unchanged")
	}
}

// NetworkName returns the well-known network name for a chain id, or "" if unknown
func NetworkName(chainID string) string {
	return params.NetworkNames[chainID]
}

func chainLabel(chainID string) string {
	if name := NetworkName(chainID); name != "" {
		return color.New(color.FgCyan, color.Bold).Sprintf("Chain %s (%s)", chainID, name)
	}
	return color.New(color.FgCyan, color.Bold).Sprintf("Chain %s", chainID)
}
