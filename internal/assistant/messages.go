package assistant

// Reply templates, keyed by message id then locale. Values carry the
// lightweight inline markup the chat widget renders (<strong>, <em>,
// <code>, <a>, <br>); no full document markup.
var messages = map[string]map[Locale]string{
	"examples": {
		LocaleRus: "<strong>Как правильно задавать запросы:</strong><br><br>" +
			"1. <code>найди отели до 30$</code><br>" +
			"2. <code>отели в Кишинёве до 50 долларов</code><br>" +
			"3. <code>отели 2-3 звезды до 40 usd</code><br>" +
			"4. <code>в Кишиневе 4 звезды</code><br>" +
			"5. <code>отели с хорошими отзывами</code><br>" +
			"6. <code>отели 2-5 звезд в Бухаресте</code><br>" +
			"7. <code>поддержка</code> — связь с администратором<br><br>" +
			"<em>Пиши как удобно — я пойму!</em>",
		LocaleEng: "<strong>How to phrase your requests:</strong><br><br>" +
			"1. <code>find hotels up to 30$</code><br>" +
			"2. <code>hotels in Chisinau up to 50 dollars</code><br>" +
			"3. <code>hotels 2-3 stars up to 40 usd</code><br>" +
			"4. <code>in Chisinau 4 stars</code><br>" +
			"5. <code>hotels with good reviews</code><br>" +
			"6. <code>hotels 2-5 stars in Bucharest</code><br>" +
			"7. <code>support</code> — talk to an administrator<br><br>" +
			"<em>Write however you like — I'll understand!</em>",
		LocaleRom: "<strong>Cum să formulezi cererile:</strong><br><br>" +
			"1. <code>caută hoteluri până la 30$</code><br>" +
			"2. <code>hoteluri in Chisinau până la 50 dolari</code><br>" +
			"3. <code>hoteluri 2-3 stele până la 40 usd</code><br>" +
			"4. <code>in Chisinau 4 stele</code><br>" +
			"5. <code>hoteluri cu recenzii bune</code><br>" +
			"6. <code>hoteluri 2-5 stele in Bucuresti</code><br>" +
			"7. <code>suport</code> — legătura cu administratorul<br><br>" +
			"<em>Scrie cum îți e comod — voi înțelege!</em>",
	},
	"greeting": {
		LocaleRus: "Здравствуйте, я текстовый помощник, чем вам помочь?<br>" +
			"Введите <strong>сводка</strong>, чтобы увидеть примеры запросов.",
		LocaleEng: "Hello, I'm the text assistant, how can I help?<br>" +
			"Type <strong>examples</strong> to see sample requests.",
		LocaleRom: "Bună ziua, sunt asistentul text, cu ce vă pot ajuta?<br>" +
			"Tastați <strong>exemple</strong> pentru a vedea cereri de exemplu.",
	},
	"support": {
		LocaleRus: "Войдите в профиль → <strong>Служба поддержки</strong> → <strong>Создать чат</strong>.",
		LocaleEng: "Open your profile → <strong>Support</strong> → <strong>New chat</strong>.",
		LocaleRom: "Deschideți profilul → <strong>Suport</strong> → <strong>Chat nou</strong>.",
	},
	"results_header": {
		LocaleRus: "<strong>Найдено отелей:</strong>",
		LocaleEng: "<strong>Hotels found:</strong>",
		LocaleRom: "<strong>Hoteluri găsite:</strong>",
	},
	"results_footer": {
		LocaleRus: "<br><em>Хотите уточнить даты или удобства?</em>",
		LocaleEng: "<br><em>Want to narrow down dates or amenities?</em>",
		LocaleRom: "<br><em>Doriți să precizați datele sau facilitățile?</em>",
	},
	"stars_word": {
		LocaleRus: "звёзд",
		LocaleEng: "stars",
		LocaleRom: "stele",
	},
	"hotel_link": {
		LocaleRus: "Перейти к отелю",
		LocaleEng: "View hotel",
		LocaleRom: "Vezi hotelul",
	},
	"no_reviews": {
		LocaleRus: "Нет отзывов",
		LocaleEng: "No reviews",
		LocaleRom: "Fără recenzii",
	},
	"rating": {
		LocaleRus: "Рейтинг: %.1f/5",
		LocaleEng: "Rating: %.1f/5",
		LocaleRom: "Rating: %.1f/5",
	},
	"top_reviews": {
		LocaleRus: "Лучшие отзывы:",
		LocaleEng: "Top reviews:",
		LocaleRom: "Cele mai bune recenzii:",
	},
	"no_results": {
		LocaleRus: "<strong>Не нашёл отелей.</strong> Попробуйте:<br>" +
			"• <code>найди отели до 30$</code><br>" +
			"• <code>отели в Кишинёве</code><br>" +
			"• введите <code>сводка</code> для примеров",
		LocaleEng: "<strong>No hotels found.</strong> Try:<br>" +
			"• <code>find hotels up to 30$</code><br>" +
			"• <code>hotels in Chisinau</code><br>" +
			"• type <code>examples</code> for more",
		LocaleRom: "<strong>Nu am găsit hoteluri.</strong> Încercați:<br>" +
			"• <code>caută hoteluri până la 30$</code><br>" +
			"• <code>hoteluri in Chisinau</code><br>" +
			"• tastați <code>exemple</code> pentru mostre",
	},
	"currency_error": {
		LocaleRus: "Не распознал валюту. Я умею считать в USD, EUR, UAH, RUB, MDL и RON.",
		LocaleEng: "I don't recognize that currency. I can work with USD, EUR, UAH, RUB, MDL and RON.",
		LocaleRom: "Nu recunosc această valută. Pot lucra cu USD, EUR, UAH, RUB, MDL și RON.",
	},
	"lang_unsupported": {
		LocaleRus: "Извините, этот язык не поддерживается. Пожалуйста, пишите на русском, английском или румынском.",
		LocaleEng: "Sorry, that language is not supported. Please write in Russian, English or Romanian.",
		LocaleRom: "Ne pare rău, această limbă nu este acceptată. Vă rugăm să scrieți în rusă, engleză sau română.",
	},
	"unrecognized": {
		LocaleRus: "Не понял запрос.<br>" +
			"Введите <strong>сводка</strong> — покажу все примеры.<br>" +
			"Или попробуйте: <code>найди отели до 30$</code>",
		LocaleEng: "I didn't understand that.<br>" +
			"Type <strong>examples</strong> and I'll show what I can do.<br>" +
			"Or try: <code>find hotels up to 30$</code>",
		LocaleRom: "Nu am înțeles cererea.<br>" +
			"Tastați <strong>exemple</strong> — vă arăt ce pot face.<br>" +
			"Sau încercați: <code>caută hoteluri până la 30$</code>",
	},
	"generic_error": {
		LocaleRus: "Что-то пошло не так. Попробуйте ещё раз.",
		LocaleEng: "Something went wrong. Please try again.",
		LocaleRom: "Ceva nu a mers bine. Încercați din nou.",
	},
}

// tr returns the template for key in loc, falling back to English and then
// to the key itself so a missing entry is visible rather than silent.
func tr(loc Locale, key string) string {
	byLocale, ok := messages[key]
	if !ok {
		return key
	}
	if s, ok := byLocale[loc]; ok {
		return s
	}
	return byLocale[LocaleEng]
}
