package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestShortcutFileName(t *testing.T) {
	desc := ProgramDescriptor{ShortcutName: "IRPF 2025.lnk"}
	if got := desc.ShortcutFileName("IRPF2025"); got != "IRPF 2025.lnk" {
		t.Errorf("Expected catalog shortcut name, got %q", got)
	}

	desc = ProgramDescriptor{}
	if got := desc.ShortcutFileName("IRPF2025"); got != "IRPF2025.lnk" {
		t.Errorf("Expected default shortcut name 'IRPF2025.lnk', got %q", got)
	}
}

func TestDescriptorCatalogSchema(t *testing.T) {
	raw := `{
		"nome": "IRPF 2025",
		"versao_disponivel": "2.0",
		"url_download": "https://downloadirpf.receita.fazenda.gov.br/irpf/2025/IRPF2025-2.0.exe",
		"nome_arquivo": "IRPF2025.exe",
		"atalho_nome": "IRPF 2025.lnk",
		"descricao": "Declaração do Imposto de Renda Pessoa Física"
	}`

	var desc ProgramDescriptor
	if err := json.Unmarshal([]byte(raw), &desc); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if desc.Name != "IRPF 2025" {
		t.Errorf("Expected name 'IRPF 2025', got %q", desc.Name)
	}
	if desc.AvailableVersion != "2.0" {
		t.Errorf("Expected available version '2.0', got %q", desc.AvailableVersion)
	}
	if desc.FileName != "IRPF2025.exe" {
		t.Errorf("Expected file name 'IRPF2025.exe', got %q", desc.FileName)
	}
}

func TestInstallStatus(t *testing.T) {
	if !StatusInstalled.IsInstalled() {
		t.Error("StatusInstalled should report installed")
	}
	if StatusNotInstalled.IsInstalled() {
		t.Error("StatusNotInstalled should not report installed")
	}
	if StatusNotInstalled.String() != "NotInstalled" {
		t.Errorf("Expected 'NotInstalled', got %q", StatusNotInstalled.String())
	}
}

func TestSessionElapsedAndThroughput(t *testing.T) {
	var empty DownloadSession
	if empty.Elapsed() != 0 {
		t.Error("Empty session should have zero elapsed time")
	}
	if empty.Throughput() != 0 {
		t.Error("Empty session should have zero throughput")
	}

	session := DownloadSession{
		Downloaded: 1024 * 1024,
		StartedAt:  time.Now().Add(-2 * time.Second),
	}
	if session.Elapsed() < time.Second {
		t.Errorf("Expected at least 1s elapsed, got %v", session.Elapsed())
	}
	if session.Throughput() <= 0 {
		t.Errorf("Expected positive throughput, got %f", session.Throughput())
	}
}
