package model

// VersionUnknown is the sentinel local version reported for programs that
// are not installed. It always ranks behind any known available version.
const VersionUnknown = "N/D"

// ProgramDescriptor is one catalog entry describing an external program.
// JSON field names follow the persisted versions.json schema.
type ProgramDescriptor struct {
	Name             string `json:"nome"`
	AvailableVersion string `json:"versao_disponivel"`
	DownloadURL      string `json:"url_download"`
	FileName         string `json:"nome_arquivo"`
	ShortcutName     string `json:"atalho_nome"`
	Description      string `json:"descricao"`
}

// ShortcutFileName returns the installation-marker file name for the
// program, defaulting to "<id>.lnk" when the catalog does not name one.
func (pd ProgramDescriptor) ShortcutFileName(id string) string {
	if pd.ShortcutName != "" {
		return pd.ShortcutName
	}
	return id + ".lnk"
}

// ProgramRow carries the computed per-program data rendered by the UI table.
type ProgramRow struct {
	ID               string
	Name             string
	Status           InstallStatus
	LocalVersion     string
	AvailableVersion string
	DownloadURL      string
	FileName         string
	ShortcutName     string
	Description      string
}
