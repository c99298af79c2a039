package domain

const SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportFilters struct {
	StartDate string
	EndDate   string
	Account   AccountKey
}

type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
