package registry

import "github.com/fiscotools/integrador/internal/model"

// DefaultCatalog returns the fixed set of Receita Federal programs tracked
// by the application. It is persisted verbatim on first run and can be
// edited in data/versions.json afterwards.
func DefaultCatalog() map[string]model.ProgramDescriptor {
	return map[string]model.ProgramDescriptor{
		"IRPF2025": {
			Name:             "IRPF 2025",
			AvailableVersion: "1.2",
			DownloadURL:      "https://downloadirpf.receita.fazenda.gov.br/irpf/2025/irpf/arquivos/IRPF2025-1.2.exe",
			FileName:         "IRPF2025.exe",
			ShortcutName:     "IRPF 2025.lnk",
			Description:      "Programa da Declaração do Imposto de Renda Pessoa Física 2025",
		},
		"Receitanet": {
			Name:             "Receitanet",
			AvailableVersion: "1.10",
			DownloadURL:      "https://downloadirpf.receita.fazenda.gov.br/receitanet/Receitanet-1.10.exe",
			FileName:         "Receitanet.exe",
			ShortcutName:     "Receitanet.lnk",
			Description:      "Transmissão de declarações para a Receita Federal",
		},
		"ReceitanetBX": {
			Name:             "ReceitanetBX",
			AvailableVersion: "1.9.8",
			DownloadURL:      "https://downloadirpf.receita.fazenda.gov.br/receitanetbx/ReceitanetBX-1.9.8.exe",
			FileName:         "ReceitanetBX.exe",
			ShortcutName:     "ReceitanetBX.lnk",
			Description:      "Download de arquivos e cópias de declarações",
		},
		"SPED_ECF": {
			Name:             "SPED ECF",
			AvailableVersion: "10.1.4",
			DownloadURL:      "https://www.gov.br/receitafederal/sped/ecf/SpedEcf-10.1.4.exe",
			FileName:         "SpedEcf.exe",
			ShortcutName:     "SPED ECF.lnk",
			Description:      "Escrituração Contábil Fiscal",
		},
		"SPED_Contabil": {
			Name:             "SPED Contábil",
			AvailableVersion: "9.0.2",
			DownloadURL:      "https://www.gov.br/receitafederal/sped/ecd/SpedContabil-9.0.2.exe",
			FileName:         "SpedContabil.exe",
			ShortcutName:     "SPED Contábil.lnk",
			Description:      "Escrituração Contábil Digital",
		},
		"EFD_Contribuicoes": {
			Name:             "EFD Contribuições",
			AvailableVersion: "6.0.5",
			DownloadURL:      "https://www.gov.br/receitafederal/sped/efd/EFDContribuicoes-6.0.5.exe",
			FileName:         "EFDContribuicoes.exe",
			ShortcutName:     "EFD Contribuições.lnk",
			Description:      "Escrituração Fiscal Digital de PIS/Pasep e Cofins",
		},
		"GCAP2025": {
			Name:             "GCAP 2025",
			AvailableVersion: "1.0",
			DownloadURL:      "https://downloadirpf.receita.fazenda.gov.br/gcap/2025/GCAP2025-1.0.exe",
			FileName:         "GCAP2025.exe",
			ShortcutName:     "GCAP 2025.lnk",
			Description:      "Apuração de Ganhos de Capital 2025",
		},
	}
}
