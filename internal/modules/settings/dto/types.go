package dto

type SettingRow struct {
	Key   string
	Value any
}

type PresetOutput struct {
	Name        string
	Description string
}
