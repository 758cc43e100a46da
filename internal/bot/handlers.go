package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/example/wordslearning/internal/database"
	"github.com/example/wordslearning/internal/quiz"
	"github.com/example/wordslearning/internal/storage"
	"github.com/example/wordslearning/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Constants for callback data
const (
	callbackNext    = "next"
	callbackReverse = "reverse"
	callbackStudied = "studied"
	callbackShuffle = "shuffle"
	callbackRepeat  = "repeat"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// QuestionButtons returns the buttons shown under every question
func QuestionButtons() [][]MenuButton {
	return [][]MenuButton{
		{
			{Text: "⏭ Дальше", CallbackData: callbackNext},
			{Text: "🔄 Направление", CallbackData: callbackReverse},
		},
		{
			{Text: "✅ Знаю", CallbackData: callbackStudied},
			{Text: "🔀 Вперемешку", CallbackData: callbackShuffle},
			{Text: "🔁 Повтор", CallbackData: callbackRepeat},
		},
	}
}

// HandleCommand handles bot commands
func (b *Bot) HandleCommand(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	var err error
	switch message.Command() {
	case "start":
		err = b.handleStart(chatID)
	case "help":
		b.reply(chatID, helpText)
	case "next":
		err = b.askQuestion(chatID)
	case "reverse":
		err = b.handleReverse(chatID)
	case "shuffle":
		b.handleShuffle(chatID)
	case "repeat":
		b.handleRepeat(chatID)
	case "studied":
		err = b.handleStudied(chatID)
	case "stats":
		err = b.handleStats(chatID, args)
	case "edit":
		err = b.handleEdit(ctx, chatID, args)
	case "delete":
		err = b.handleDelete(chatID, args)
	case "lists":
		err = b.handleLists(ctx, chatID)
	case "newlist":
		err = b.handleNewList(ctx, chatID, args)
	case "droplist":
		err = b.handleDropList(ctx, chatID, args)
	case "uselist":
		err = b.handleUseList(ctx, chatID, args)
	case "all":
		b.quiz.UseAll()
		b.reply(chatID, "📚 Учим все слова")
		err = b.askQuestion(chatID)
	default:
		b.reply(chatID, "Неизвестная команда. Используй /help")
	}
	return err
}

// HandleCallback handles presses on the question buttons
func (b *Bot) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	if callback.From == nil || callback.Message == nil || callback.Message.Chat == nil {
		return fmt.Errorf("invalid callback: required fields are missing")
	}
	if _, err := b.sender.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.logger.Warn("failed to answer callback", zap.Error(err))
	}
	if !b.isAllowed(callback.From.ID) {
		return nil
	}

	chatID := callback.Message.Chat.ID
	switch callback.Data {
	case callbackNext:
		return b.askQuestion(chatID)
	case callbackReverse:
		return b.handleReverse(chatID)
	case callbackStudied:
		return b.handleStudied(chatID)
	case callbackShuffle:
		b.handleShuffle(chatID)
	case callbackRepeat:
		b.handleRepeat(chatID)
	default:
		b.logger.Debug("unknown callback", zap.String("data", callback.Data))
	}
	return nil
}

const helpText = "📖 Команды\n\n" +
	"/next - следующее слово\n" +
	"/reverse - сменить направление перевода\n" +
	"/shuffle - случайный порядок вкл/выкл\n" +
	"/repeat - режим повторения вкл/выкл (ответы не учитываются)\n" +
	"/studied - отметить слово как изученное\n" +
	"/stats [alpha|percent|rating] - статистика\n" +
	"/edit слово | перевод1, перевод2 | транскрипция - изменить текущее слово\n" +
	"/delete слово - удалить слово\n" +
	"/lists - списки слов\n" +
	"/newlist имя | слово1, слово2 - создать список\n" +
	"/droplist имя - удалить список\n" +
	"/uselist имя - учить только список\n" +
	"/all - учить все слова\n\n" +
	"Чтобы ответить, просто напиши перевод."

func (b *Bot) handleStart(chatID int64) error {
	b.reply(chatID, "🤖 Привет! Я помогу учить слова.\n\n"+
		"Слова, которые ты знаешь хуже, я спрашиваю чаще. "+
		"Напиши перевод показанного слова.\n\n"+helpText)
	return b.askQuestion(chatID)
}

func (b *Bot) askQuestion(chatID int64) error {
	q, err := b.session(chatID).Ask()
	if errors.Is(err, quiz.ErrNoQuestion) {
		b.reply(chatID, "📭 Нет слов для изучения")
		return nil
	}
	if err != nil {
		return err
	}
	b.sendQuestion(chatID, q)
	return nil
}

func (b *Bot) sendQuestion(chatID int64, q quiz.Question) {
	var sb strings.Builder
	sb.WriteString("❓ ")
	sb.WriteString(q.Text)
	if q.Direction == models.ForeignToNative && q.Word.Transcription != "" {
		sb.WriteString(" [" + q.Word.Transcription + "]")
	}
	if q.Remark != "" {
		sb.WriteString("\n💡 " + q.Remark)
	}
	sb.WriteString(fmt.Sprintf("\n📈 Изучено: %.0f%%", q.MasteryPercent))

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = createKeyboard(QuestionButtons())
	b.send(msg)
}

func (b *Bot) handleAnswer(chatID int64, text string) error {
	session := b.session(chatID)
	res, err := session.Answer(text)
	if errors.Is(err, quiz.ErrNoCurrentWord) || errors.Is(err, quiz.ErrWordNotFound) {
		return b.askQuestion(chatID)
	}
	if err != nil {
		return err
	}

	if !res.Correct {
		b.reply(chatID, fmt.Sprintf("❌ Неверно: %s\nПравильно: %s", strings.TrimSpace(text), expectedText(res, session.Direction())))
		return nil
	}

	b.reply(chatID, fmt.Sprintf("✅ Верно! %s — %s", res.Word.Foreign, res.Word.NativeDescription()))
	if res.Next != nil {
		b.sendQuestion(chatID, *res.Next)
	}
	return nil
}

func expectedText(res quiz.AnswerResult, direction models.Direction) string {
	if direction == models.NativeToForeign {
		return res.Word.Foreign
	}
	return res.Word.NativeDescription()
}

func (b *Bot) handleReverse(chatID int64) error {
	q, err := b.session(chatID).ReverseDirection()
	if errors.Is(err, quiz.ErrNoQuestion) {
		b.reply(chatID, "📭 Нет слов для изучения")
		return nil
	}
	if err != nil {
		return err
	}
	b.sendQuestion(chatID, q)
	return nil
}

func (b *Bot) handleShuffle(chatID int64) {
	b.reply(chatID, "🔀 Случайный порядок: "+boolToEnabledString(b.session(chatID).ToggleShuffle()))
}

func (b *Bot) handleRepeat(chatID int64) {
	b.reply(chatID, "🔁 Режим повторения: "+boolToEnabledString(b.session(chatID).ToggleRepeat()))
}

func boolToEnabledString(enabled bool) string {
	if enabled {
		return "включен"
	}
	return "выключен"
}

func (b *Bot) handleStudied(chatID int64) error {
	w, q, err := b.session(chatID).MarkStudied()
	if errors.Is(err, quiz.ErrNoCurrentWord) {
		b.reply(chatID, "Сначала получи слово: /next")
		return nil
	}
	if err != nil && !errors.Is(err, quiz.ErrNoQuestion) {
		return err
	}

	b.reply(chatID, fmt.Sprintf("🎓 %s отмечено как изученное", w.Foreign))
	if err == nil {
		b.sendQuestion(chatID, q)
	}
	return nil
}

func (b *Bot) handleStats(chatID int64, args string) error {
	mode, err := quiz.ParseSortMode(args)
	if err != nil {
		b.reply(chatID, "Сортировка: alpha, percent или rating")
		return nil
	}

	session := b.session(chatID)
	rows := quiz.Report(b.quiz.Words(), mode, session.Direction(), b.quiz.Now())
	if len(rows) == 0 {
		b.reply(chatID, "📭 Нет слов")
		return nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 Слов: %d\n\n", len(rows)))
	for i, row := range rows {
		if i == b.config.StatsLimit {
			sb.WriteString(fmt.Sprintf("… и ещё %d", len(rows)-i))
			break
		}
		sb.WriteString(fmt.Sprintf("%s — %s | %.0f%% / %.0f%% | %.2f\n",
			row.Foreign, row.Native, row.FToNPercent, row.NToFPercent, row.Rating))
	}
	b.reply(chatID, sb.String())
	return nil
}

// parseEdit reads "foreign | native1, native2 | transcription | f-to-n remark | n-to-f remark"
func parseEdit(args string) (models.WordEdit, error) {
	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 || parts[0] == "" {
		return models.WordEdit{}, fmt.Errorf("expected: слово | перевод1, перевод2 | транскрипция")
	}

	edit := models.WordEdit{Foreign: parts[0], Native: splitList(parts[1])}
	if len(edit.Native) == 0 {
		return models.WordEdit{}, fmt.Errorf("translation cannot be empty")
	}
	if len(parts) > 2 {
		edit.Transcription = parts[2]
	}
	if len(parts) > 3 {
		edit.FToNRemark = parts[3]
	}
	if len(parts) > 4 {
		edit.NToFRemark = parts[4]
	}
	return edit, nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (b *Bot) handleEdit(ctx context.Context, chatID int64, args string) error {
	edit, err := parseEdit(args)
	if err != nil {
		b.reply(chatID, "✏️ Формат: /edit слово | перевод1, перевод2 | транскрипция")
		return nil
	}

	session := b.session(chatID)
	before, err := session.Current()
	if err != nil {
		b.reply(chatID, "Сначала получи слово: /next")
		return nil
	}

	q, err := session.EditCurrent(edit)
	if errors.Is(err, quiz.ErrWordExists) {
		b.reply(chatID, fmt.Sprintf("Слово %s уже есть", edit.Foreign))
		return nil
	}
	if err != nil {
		return err
	}

	if err := b.store.UpdateWord(ctx, before.Word.Foreign, edit); err != nil {
		// the autosave job writes the edit with the next snapshot
		b.logger.Warn("failed to store edited word", zap.String("word", before.Word.Foreign), zap.Error(err))
	}

	b.reply(chatID, "✏️ Слово изменено")
	b.sendQuestion(chatID, q)
	return nil
}

func (b *Bot) handleDelete(chatID int64, foreign string) error {
	if foreign == "" {
		b.reply(chatID, "🗑 Формат: /delete слово")
		return nil
	}

	if err := b.quiz.RemoveWord(foreign); err != nil {
		if errors.Is(err, quiz.ErrWordNotFound) {
			b.reply(chatID, fmt.Sprintf("Слово %s не найдено", foreign))
			return nil
		}
		return err
	}
	b.reply(chatID, fmt.Sprintf("🗑 Слово %s удалено", foreign))

	asked := false
	for _, s := range b.sessionsSnapshot() {
		if s.Forget(foreign) && s == b.session(chatID) {
			asked = true
		}
	}
	if asked {
		return b.askQuestion(chatID)
	}
	return nil
}

func (b *Bot) lists(chatID int64) (storage.ListStorage, bool) {
	lists, err := b.store.Lists()
	if err != nil {
		b.reply(chatID, "Списки слов не поддерживаются этим хранилищем")
		return nil, false
	}
	return lists, true
}

func (b *Bot) handleLists(ctx context.Context, chatID int64) error {
	lists, ok := b.lists(chatID)
	if !ok {
		return nil
	}

	all, err := lists.LoadWordsLists(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		b.reply(chatID, "📭 Списков нет. Создай: /newlist имя | слово1, слово2")
		return nil
	}

	var sb strings.Builder
	sb.WriteString("📋 Списки слов:\n\n")
	for _, l := range all {
		sb.WriteString(fmt.Sprintf("• %s (%d): %s\n", l.Name, len(l.Words), strings.Join(l.Foreigns(), ", ")))
	}
	b.reply(chatID, sb.String())
	return nil
}

func (b *Bot) handleNewList(ctx context.Context, chatID int64, args string) error {
	name, rest, found := strings.Cut(args, "|")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		b.reply(chatID, "📋 Формат: /newlist имя | слово1, слово2")
		return nil
	}

	lists, ok := b.lists(chatID)
	if !ok {
		return nil
	}

	list := models.WordsList{Name: name}
	var missing []string
	for _, foreign := range splitList(rest) {
		w, ok := b.quiz.Find(foreign)
		if !ok {
			missing = append(missing, foreign)
			continue
		}
		list.Words = append(list.Words, w)
	}
	if len(list.Words) == 0 {
		b.reply(chatID, "Ни одно слово не найдено")
		return nil
	}

	// List items reference stored words. Bootstrap words live only in
	// memory until the first save, so force one.
	b.quiz.MarkDirty()
	if err := b.flusher.Flush(ctx); err != nil {
		return err
	}
	if err := lists.CreateWordsList(ctx, list); err != nil {
		if errors.Is(err, database.ErrListExists) {
			b.reply(chatID, fmt.Sprintf("Список %s уже есть", name))
			return nil
		}
		return err
	}

	text := fmt.Sprintf("📋 Список %s создан: %d слов", name, len(list.Words))
	if len(missing) > 0 {
		text += "\nНе найдены: " + strings.Join(missing, ", ")
	}
	b.reply(chatID, text)
	return nil
}

func (b *Bot) handleDropList(ctx context.Context, chatID int64, name string) error {
	if name == "" {
		b.reply(chatID, "📋 Формат: /droplist имя")
		return nil
	}

	lists, ok := b.lists(chatID)
	if !ok {
		return nil
	}
	if err := lists.DeleteWordsList(ctx, name); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			b.reply(chatID, fmt.Sprintf("Список %s не найден", name))
			return nil
		}
		return err
	}
	b.reply(chatID, fmt.Sprintf("🗑 Список %s удалён", name))
	return nil
}

func (b *Bot) handleUseList(ctx context.Context, chatID int64, name string) error {
	lists, ok := b.lists(chatID)
	if !ok {
		return nil
	}

	all, err := lists.LoadWordsLists(ctx)
	if err != nil {
		return err
	}
	for _, l := range all {
		if l.Name != name {
			continue
		}
		n := b.quiz.UseWords(l.Foreigns())
		b.reply(chatID, fmt.Sprintf("📋 Учим список %s: %d слов", name, n))
		return b.askQuestion(chatID)
	}

	b.reply(chatID, fmt.Sprintf("Список %s не найден", name))
	return nil
}
