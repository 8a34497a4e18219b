package models

// Settings are the five path settings an entry is created from.
type Settings struct {
	AccountsFolderPath      string `mapstructure:"accounts_folder_path" yaml:"accounts_folder_path" json:"accountsFolderPath"`
	TagsFolderPath          string `mapstructure:"tags_folder_path" yaml:"tags_folder_path" json:"tagsFolderPath"`
	TemplateFilePath        string `mapstructure:"template_file_path" yaml:"template_file_path" json:"templateFilePath"`
	CreatedFilePathTemplate string `mapstructure:"created_file_path_template" yaml:"created_file_path_template" json:"createdFilePathTemplate"`
	SummaryFilePath         string `mapstructure:"summary_file_path" yaml:"summary_file_path" json:"summaryFilePath"`
}

// Default settings values.
const (
	DefaultAccountsFolderPath      = "finance/budget/accounts"
	DefaultTagsFolderPath          = "finance/budget/tags"
	DefaultTemplateFilePath        = "finance/budget/template/budget entry.md"
	DefaultCreatedFilePathTemplate = "finance/budget/{year}/{month}/{day}-{month}-{year}-{details}"
)

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		AccountsFolderPath:      DefaultAccountsFolderPath,
		TagsFolderPath:          DefaultTagsFolderPath,
		TemplateFilePath:        DefaultTemplateFilePath,
		CreatedFilePathTemplate: DefaultCreatedFilePathTemplate,
	}
}
