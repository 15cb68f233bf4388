package bootstrap

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// Console prints human-readable progress of a run. Styles are bound to the
// writer, so output that is not a terminal stays plain text.
type Console struct {
	w io.Writer

	title lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:     w,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		fail:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		label: r.NewStyle().Bold(true),
		muted: r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
	}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.w, format, args...)
}

// Banner opens a run against the described store.
func (c *Console) Banner(storage string) {
	c.printf("%s\n", c.title.Render("Bitcoin Trading Game - Collections Initialization"))
	c.printf("%s\n", strings.Repeat("=", 60))
	c.printf("Initializing vector store with persistent storage at: %s\n", storage)
}

func (c *Console) ClientReady() {
	c.printf("%s\n", c.ok.Render("✓ Vector store client initialized successfully"))
}

func (c *Console) ClientFailed(err error) {
	c.printf("%s\n", c.fail.Render(fmt.Sprintf("✗ Failed to initialize vector store client: %v", err)))
}

// EnsureStart announces the creation phase.
func (c *Console) EnsureStart(n int) {
	c.printf("\nCreating %d collections...\n", n)
	c.printf("%s\n", strings.Repeat("-", 40))
}

// CollectionHeader prints the descriptive fields of a spec.
func (c *Console) CollectionHeader(spec vectordb.CollectionSpec) {
	c.printf("\n%s %s\n", c.label.Render("Collection:"), spec.Name)
	c.printf("Description: %s\n", spec.Metadata[KeyDescription])
	c.printf("Data types: %s\n", spec.Metadata[KeyDataTypes])
	c.printf("Usage: %s\n", spec.Metadata[KeyUsage])
}

func (c *Console) Existing(name string) {
	c.printf("%s\n", c.ok.Render(fmt.Sprintf("✓ Collection '%s' already exists", name)))
}

func (c *Console) Created(name string) {
	c.printf("%s\n", c.ok.Render(fmt.Sprintf("✓ Created collection '%s'", name)))
}

func (c *Console) EnsureFailed(name string, err error) {
	c.printf("%s\n", c.fail.Render(fmt.Sprintf("✗ Failed to create collection '%s': %v", name, err)))
}

func (c *Console) InvalidCollections(err error) {
	c.printf("%s\n", c.fail.Render(fmt.Sprintf("✗ Invalid collection configuration: %v", err)))
}

func (c *Console) Initialized(n int) {
	c.printf("\n%s\n", c.title.Render(fmt.Sprintf("Successfully initialized %d collections!", n)))
}

func (c *Console) VerifyStart() {
	c.printf("\n%s\n", c.label.Render("Verifying collections:"))
	c.printf("%s\n", strings.Repeat("-", 25))
}

// VerifyEntry prints one listed collection with its 1-based index.
func (c *Console) VerifyEntry(index int, e ReportEntry) {
	c.printf("%d. %s\n", index, e.Name)
	c.printf("   Documents: %d\n", e.DocumentCount)
	c.printf("   %s\n\n", c.muted.Render("Metadata: "+FormatMetadata(e.Metadata)))
}

func (c *Console) Total(n int) {
	c.printf("Total collections: %d\n", n)
}

func (c *Console) ReportSaved(path string) {
	c.printf("%s\n", c.ok.Render(fmt.Sprintf("✓ Collection information saved to '%s'", path)))
}

func (c *Console) VerifyFailed(err error) {
	c.printf("%s\n", c.fail.Render(fmt.Sprintf("✗ Failed to list collections: %v", err)))
}

func (c *Console) ReportFailed(err error) {
	c.printf("%s\n", c.fail.Render(fmt.Sprintf("✗ Failed to save collection information: %v", err)))
}

func (c *Console) Completed() {
	c.printf("\n%s\n", c.ok.Render("✅ Bitcoin Trading Game vector store setup completed successfully!"))
	c.printf("Collections are ready for storing game data with efficient indexing.\n")
}

// FormatMetadata renders metadata as {k: v, ...} with keys sorted.
func FormatMetadata(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", k, m[k])
	}
	b.WriteByte('}')
	return b.String()
}
