package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconNotifySuccess = "\uf058"     // nf-fa-check_circle
	IconNotifyInfo    = "\uf05a"     // nf-fa-info_circle
	IconNotifyError   = "\uf057"     // nf-fa-times_circle
	IconFile          = "\uf15b"     // nf-fa-file
	IconText          = "\uf036"     // nf-fa-align_left
	IconDNA           = "\U000F0683" // nf-md-dna
)
