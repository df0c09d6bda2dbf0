// Package main renders the TTS provider catalog as Markdown or YAML.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/voiceconsole/manager/internal/tts"
)

// CatalogDoc is the data handed to the templates.
type CatalogDoc struct {
	Providers []ProviderDoc `yaml:"providers"`
}

// ProviderDoc describes one provider and its static voices.
type ProviderDoc struct {
	Label              string            `yaml:"label"`
	Value              string            `yaml:"value"`
	SupportsVoiceClone bool              `yaml:"supports_voice_clone"`
	HasVoiceList       bool              `yaml:"has_voice_list"`
	Voices             []tts.VoiceOption `yaml:"voices,omitempty"`
}

const markdownTemplate = `# TTS Provider Catalog

| Provider | Value | Voice clone | Voice list |
|----------|-------|-------------|------------|
{{range .Providers}}| {{.Label}} | ` + "`{{.Value}}`" + ` | {{yesno .SupportsVoiceClone}} | {{yesno .HasVoiceList}} |
{{end}}
{{range .Providers}}{{if .Voices}}
## {{.Label}}

| Voice | Value |
|-------|-------|
{{range .Voices}}| {{.Label}} | ` + "`{{.Value}}`" + ` |
{{end}}{{end}}{{end}}`

func main() {
	var (
		output = flag.String("output", "docs/TTS_PROVIDERS.md", "Output file")
		format = flag.String("format", "markdown", "Output format: markdown or yaml")
	)
	flag.Parse()

	doc := buildCatalogDoc()

	var (
		data []byte
		err  error
	)
	switch *format {
	case "markdown":
		data, err = generateMarkdown(doc)
	case "yaml":
		data, err = yaml.Marshal(doc)
	default:
		log.Fatalf("Unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("Failed to render catalog: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0750); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	if err := os.WriteFile(*output, data, 0600); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	fmt.Printf("Catalog written to %s\n", *output)
}

func buildCatalogDoc() CatalogDoc {
	var doc CatalogDoc
	for _, p := range tts.ProviderOptions() {
		doc.Providers = append(doc.Providers, ProviderDoc{
			Label:              p.Label,
			Value:              p.Value,
			SupportsVoiceClone: p.SupportsVoiceClone,
			HasVoiceList:       tts.HasVoiceList(p.Value),
			Voices:             tts.VoiceOptions(p.Value),
		})
	}
	return doc
}

func generateMarkdown(doc CatalogDoc) ([]byte, error) {
	tmpl, err := template.New("catalog").Funcs(template.FuncMap{
		"yesno": func(b bool) string {
			if b {
				return "yes"
			}
			return "no"
		},
	}).Parse(markdownTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
