package constvars

const (
	ResponseSuccess    = "success"
	ResponseUnknown    = "unknown"
	ResponseServerIsUp = "Server is running!"
)

const (
	ResponseFreeSlotsComputed = "free slots computed successfully"
	ResponseSlotExtended      = "slot extended to the next working day"
	ResponseDateConverted     = "date converted successfully"
)

// Plain text replies of the email capture flow, shown to end users in French.
const (
	TextClientKeyMissing         = "Clé client manquante."
	TextSubmissionIncomplete     = "Informations manquantes."
	TextSubmissionInvalidEmail   = "Adresse e-mail invalide."
	TextSubmissionSucceeded      = "Merci, votre adresse e-mail a bien été confirmée."
	TextSubmissionFailed         = "Erreur lors de l'envoi de votre e-mail."
	TextTooManySubmissions       = "Trop de tentatives, veuillez réessayer plus tard."
	TextCaptureRenderingFailed   = "Impossible d'afficher le formulaire."
	TextSubmissionFormUnreadable = "Formulaire illisible."
)
