package presenter

// User-facing texts. The window is localized in Indonesian, like the CSV header.
const (
	titleInputError  = "Input Error"
	titleUpdateError = "Update Error"
	titleDelete      = "Hapus"
	titleInfo        = "Info"
	titleExportDone  = "Export Berhasil"
	titleExportError = "Export Gagal"
	titleStorage     = "Database Error"

	msgFieldsRequired   = "Semua field harus diisi."
	msgYearNotNumeric   = "Tahun harus berupa angka."
	msgSelectRow        = "Pilih baris yang ingin dihapus."
	msgFocusFieldFirst  = "Klik dulu kolom input yang ingin ditempeli."
	msgExportSuccessful = "Data berhasil diekspor ke CSV."
)
