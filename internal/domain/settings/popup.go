package settings

type PopupSettings struct {
	Title       string
	Description string
	Show        bool
}

func DefaultPopupSettings() PopupSettings {
	return PopupSettings{Show: true}
}
