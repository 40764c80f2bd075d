package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyStart              = "start"
	KeyStop               = "stop"
	KeyNextTrack          = "next_track"
	KeyOpenFolder         = "open_folder"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyStatus             = "status"
	KeyReady              = "ready"
	KeyMonitoringStarted  = "monitoring_started"
	KeyMonitoringStopped  = "monitoring_stopped"
	KeyDiscoveredTracks   = "discovered_tracks"
	KeyLog                = "log"
	KeyDownloadDirectory  = "download_directory"
	KeyPollInterval       = "poll_interval"
	KeyAudioQuality       = "audio_quality"
	KeyStartURL           = "start_url"
	KeyProfileDirectory   = "profile_directory"
	KeyBrowserPath        = "browser_path"
	KeyAutoDetect         = "auto_detect"
	KeyEmbedTags          = "embed_tags"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyErrorOpeningFolder = "error_opening_folder"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale and
// falls back to English when it is not translated.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
		return
	}
	l.currentLanguage = "en"
}

func systemLanguage() string {
	tag := lang.SystemLocale().LanguageString()
	return strings.ToLower(strings.SplitN(tag, "-", 2)[0])
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Stream Grabber",
		KeyStart:              "Start",
		KeyStop:               "Stop",
		KeyNextTrack:          "Next Track " + IconPlay,
		KeyOpenFolder:         "Open Folder",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyStatus:             "Status",
		KeyReady:              "Ready",
		KeyMonitoringStarted:  "Monitoring started.",
		KeyMonitoringStopped:  "Monitoring stopped.",
		KeyDiscoveredTracks:   "Discovered tracks",
		KeyLog:                "Log",
		KeyDownloadDirectory:  "Download Directory",
		KeyPollInterval:       "Poll Interval (seconds)",
		KeyAudioQuality:       "MP3 Bitrate",
		KeyStartURL:           "Start Page",
		KeyProfileDirectory:   "Browser Profile Directory",
		KeyBrowserPath:        "Browser Executable",
		KeyAutoDetect:         "auto-detect",
		KeyEmbedTags:          "Write ID3 tags",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved. They apply the next time monitoring starts.",
		KeyErrorOpeningFolder: "Error opening folder",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Stream Grabber",
		KeyStart:              "Старт",
		KeyStop:               "Стоп",
		KeyNextTrack:          "Следующий трек " + IconPlay,
		KeyOpenFolder:         "Открыть папку",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyStatus:             "Статус",
		KeyReady:              "Готов",
		KeyMonitoringStarted:  "Мониторинг запущен.",
		KeyMonitoringStopped:  "Мониторинг остановлен.",
		KeyDiscoveredTracks:   "Найденные треки",
		KeyLog:                "Журнал",
		KeyDownloadDirectory:  "Папка загрузки",
		KeyPollInterval:       "Интервал опроса (секунды)",
		KeyAudioQuality:       "Битрейт MP3",
		KeyStartURL:           "Стартовая страница",
		KeyProfileDirectory:   "Папка профиля браузера",
		KeyBrowserPath:        "Исполняемый файл браузера",
		KeyAutoDetect:         "автоопределение",
		KeyEmbedTags:          "Записывать ID3-теги",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки сохранены. Они применятся при следующем запуске мониторинга.",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Stream Grabber",
		KeyStart:              "Iniciar",
		KeyStop:               "Parar",
		KeyNextTrack:          "Próxima faixa " + IconPlay,
		KeyOpenFolder:         "Abrir pasta",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyStatus:             "Status",
		KeyReady:              "Pronto",
		KeyMonitoringStarted:  "Monitoramento iniciado.",
		KeyMonitoringStopped:  "Monitoramento parado.",
		KeyDiscoveredTracks:   "Faixas encontradas",
		KeyLog:                "Registro",
		KeyDownloadDirectory:  "Diretório de Download",
		KeyPollInterval:       "Intervalo de verificação (segundos)",
		KeyAudioQuality:       "Taxa de bits MP3",
		KeyStartURL:           "Página inicial",
		KeyProfileDirectory:   "Diretório do perfil do navegador",
		KeyBrowserPath:        "Executável do navegador",
		KeyAutoDetect:         "detecção automática",
		KeyEmbedTags:          "Gravar tags ID3",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas. Elas valem a partir do próximo início do monitoramento.",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
	}
}
