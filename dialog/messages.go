package dialog

import "github.com/freshauto/intakebot/types"

// Dialog-facing vocabulary. Scenario tests match these literals, so changes
// here are changes to the contract.

const (
	WelcomeMessage = `Здравствуйте! Вас приветствует служба поддержки клиентов FreshAuto.
Пожалуйста, представьтесь: напишите ваши имя и фамилию.`

	NameRequest = `Пожалуйста, укажите имя и фамилию (минимум два слова). Например: Иван Петров.`

	PhoneRequest = `Спасибо! Теперь укажите ваш мобильный телефон в формате +7 XXX XXX XX XX или 8 XXX XXX XX XX.`

	PhoneError = `Не удалось распознать номер телефона.
Укажите его в формате +7 XXX XXX XX XX или 8 XXX XXX XX XX.`

	TopicRequest = `Приносим извинения за доставленные неудобства.
Опишите, пожалуйста, вашу проблему как можно подробнее.`

	ConfirmationTemplate = `Правильно ли я понял вашу проблему?

%s

Если всё верно, напишите «да». Если нет — напишите «нет» или уточните детали.`

	ConfirmationUpdateTemplate = `Я уточнил описание проблемы:

%s

Теперь всё верно? Напишите «да», «нет» или уточните ещё раз.`

	SolutionRequest = `Спасибо за подтверждение! Какое решение проблемы вы бы предложили?`

	SolutionConfirmationTemplate = `Правильно ли я понял ваше предложение?

%s

Если всё верно, напишите «да». Если нет — напишите «нет» или уточните детали.`

	SolutionConfirmationUpdateTemplate = `Я уточнил ваше предложение:

%s

Теперь всё верно? Напишите «да», «нет» или уточните ещё раз.`

	SuccessMessage = `Спасибо! Ваше обращение принято.
Наши специалисты свяжутся с вами в ближайшее время.`

	CancelMessage = `Диалог отменён. Все введённые данные удалены.
Чтобы начать заново, отправьте любое сообщение или команду /start.`

	RedoPrefix = "Хорошо, давайте исправим. "

	HelpMessage = `Я помогу оформить обращение в службу поддержки FreshAuto.
Диалог идёт по шагам: имя и фамилия, телефон, описание проблемы,
подтверждение, ваше предложение решения и его подтверждение.
Команды: /start — начать заново, /help — эта справка.
Чтобы отменить оформление, напишите «отмена».`

	ModelLoadingMessage = `Модель распознавания речи еще загружается. Попробуйте через несколько секунд.`

	VoiceStepMessage = `Голосовые сообщения принимаются только с 3-го по 6-й шаг.
Пожалуйста, используйте текстовое сообщение для продолжения диалога.`

	RecognitionFailedMessage = `Не удалось распознать речь. Попробуйте еще раз или отправьте текстовое сообщение.`
)

// StepHelp is shown for /help depending on the current step.
var StepHelp = map[types.Step]string{
	types.StepIdle:                         HelpMessage,
	types.StepAwaitingName:                 "Сейчас нужно написать ваши имя и фамилию, например: Иван Петров.",
	types.StepAwaitingPhone:                "Сейчас нужно указать телефон в формате +7 XXX XXX XX XX или 8 XXX XXX XX XX.",
	types.StepAwaitingDetails:              "Сейчас нужно описать вашу проблему своими словами, можно голосовым сообщением.",
	types.StepAwaitingConfirmation:         "Подтвердите описание проблемы («да»), отклоните («нет») или уточните детали.",
	types.StepAwaitingSolution:             "Сейчас нужно написать, какое решение проблемы вы бы предложили.",
	types.StepAwaitingSolutionConfirmation: "Подтвердите ваше предложение («да»), отклоните («нет») или уточните детали.",
}

// positiveAnswers and negativeAnswers are matched against the trimmed,
// lower-cased reply. A literal match overrides the classifier.
var positiveAnswers = map[string]struct{}{
	"да":          {},
	"да.":         {},
	"ага":         {},
	"угу":         {},
	"верно":       {},
	"всё верно":   {},
	"все верно":   {},
	"правильно":   {},
	"точно":       {},
	"подтверждаю": {},
	"ок":          {},
	"окей":        {},
	"хорошо":      {},
	"yes":         {},
}

var negativeAnswers = map[string]struct{}{
	"нет":          {},
	"нет.":         {},
	"не":           {},
	"неверно":      {},
	"не верно":     {},
	"неправильно":  {},
	"не правильно": {},
	"не так":       {},
	"нет, не так":  {},
	"no":           {},
}

// cancelCommands reset the session from any step.
var cancelCommands = map[string]struct{}{
	"/cancel":       {},
	"отмена":        {},
	"отменить":      {},
	"начать заново": {},
}
