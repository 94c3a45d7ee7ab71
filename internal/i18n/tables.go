package i18n

var builtin = map[Locale]map[string]string{
	RU: {
		"site.name":      "ЛогистикПро",
		"health.message": "ЛогистикПро API работает",

		"city.moscow":      "Москва",
		"city.spb":         "Санкт-Петербург",
		"city.kazan":       "Казань",
		"city.ekb":         "Екатеринбург",
		"city.novosibirsk": "Новосибирск",
		"city.nnov":        "Нижний Новгород",
		"city.samara":      "Самара",
		"city.rostov":      "Ростов-на-Дону",
		"city.krasnodar":   "Краснодар",
		"city.voronezh":    "Воронеж",

		"tier.standard":      "Стандартная",
		"tier.standard.days": "3-5 дней",
		"tier.express":       "Экспресс",
		"tier.express.days":  "1-2 дня",
		"tier.economy":       "Эконом",
		"tier.economy.days":  "5-7 дней",

		"extra.insurance":  "Страхование груза",
		"extra.packaging":  "Упаковка",
		"extra.loading":    "Погрузка/разгрузка",
		"extra.doorToDoor": "От двери до двери",

		"unit.km":       "км",
		"unit.kg":       "кг",
		"unit.m3":       "м³",
		"currency.sign": "₽",

		"ratecard.from": "Откуда",
		"ratecard.to":   "Куда",

		"contact.phone":    "Телефон",
		"contact.whatsapp": "WhatsApp",
		"contact.telegram": "Telegram",
		"contact.email":    "Email",

		"cargo.documents": "Документы",
		"cargo.parcels":   "Посылки/коробки",
		"cargo.pallets":   "Паллеты",
		"cargo.equipment": "Оборудование",
		"cargo.furniture": "Мебель",
		"cargo.fragile":   "Хрупкие грузы",
		"cargo.oversized": "Негабаритные грузы",
		"cargo.other":     "Другое",

		"service.express":   "Экспресс-доставка",
		"service.insurance": "Страхование груза",
		"service.packaging": "Упаковка",
		"service.loading":   "Погрузка/разгрузка",

		"lead.title":      "🚚 *Новая заявка на грузоперевозку*",
		"lead.contact":    "👤 *Контакт:* %s",
		"lead.company":    "🏢 *Компания:* %s",
		"lead.phone":      "📞 *Телефон:* %s",
		"lead.email":      "📧 *Email:* %s",
		"lead.channel":    "💬 *Связь:* %s",
		"lead.route":      "📍 *Маршрут:*",
		"lead.from":       "  Откуда: %s",
		"lead.to":         "  Куда: %s",
		"lead.cargo":      "📦 *Груз:*",
		"lead.cargo_type": "  Тип: %s",
		"lead.weight":     "  Вес: %s кг",
		"lead.volume":     "  Объём: %s м³",
		"lead.places":     "  Мест: %s",
		"lead.value":      "  Ценность: %s ₽",
		"lead.services":   "⚙️ *Доп. услуги:*",
		"lead.comment":    "💬 *Комментарий:*",
		"lead.success":    "Спасибо! Ваша заявка принята. Менеджер свяжется с вами в ближайшее время.",

		"error.invalid_route":    "Города отправки и доставки должны различаться",
		"error.unknown_city":     "Выберите город из списка",
		"error.unknown_tier":     "Выберите тип доставки",
		"error.negative":         "Вес, объём и габариты не могут быть отрицательными",
		"error.out_of_range":     "Вес до 1 000 000 кг, объём до 10 000 м³, каждая сторона до 100 000 см",
		"error.required_contact": "Пожалуйста, заполните обязательные поля: имя и телефон",
		"error.consent":          "Пожалуйста, подтвердите согласие с политикой конфиденциальности",
		"error.invalid_email":    "Укажите корректный email",
		"error.invalid_phone":    "Укажите корректный номер телефона",
		"error.validation":       "Проверьте правильность заполнения формы",
	},
	EN: {
		"site.name":      "LogistikPro",
		"health.message": "LogistikPro API is running",

		"city.moscow":      "Moscow",
		"city.spb":         "Saint Petersburg",
		"city.kazan":       "Kazan",
		"city.ekb":         "Yekaterinburg",
		"city.novosibirsk": "Novosibirsk",
		"city.nnov":        "Nizhny Novgorod",
		"city.samara":      "Samara",
		"city.rostov":      "Rostov-on-Don",
		"city.krasnodar":   "Krasnodar",
		"city.voronezh":    "Voronezh",

		"tier.standard":      "Standard",
		"tier.standard.days": "3-5 days",
		"tier.express":       "Express",
		"tier.express.days":  "1-2 days",
		"tier.economy":       "Economy",
		"tier.economy.days":  "5-7 days",

		"extra.insurance":  "Cargo insurance",
		"extra.packaging":  "Packaging",
		"extra.loading":    "Loading/unloading",
		"extra.doorToDoor": "Door to door",

		"unit.km":       "km",
		"unit.kg":       "kg",
		"unit.m3":       "m³",
		"currency.sign": "₽",

		"ratecard.from": "From",
		"ratecard.to":   "To",

		"contact.phone":    "Phone",
		"contact.whatsapp": "WhatsApp",
		"contact.telegram": "Telegram",
		"contact.email":    "Email",

		"cargo.documents": "Documents",
		"cargo.parcels":   "Parcels/boxes",
		"cargo.pallets":   "Pallets",
		"cargo.equipment": "Equipment",
		"cargo.furniture": "Furniture",
		"cargo.fragile":   "Fragile cargo",
		"cargo.oversized": "Oversized cargo",
		"cargo.other":     "Other",

		"service.express":   "Express delivery",
		"service.insurance": "Cargo insurance",
		"service.packaging": "Packaging",
		"service.loading":   "Loading/unloading",

		"lead.title":      "🚚 *New freight request*",
		"lead.contact":    "👤 *Contact:* %s",
		"lead.company":    "🏢 *Company:* %s",
		"lead.phone":      "📞 *Phone:* %s",
		"lead.email":      "📧 *Email:* %s",
		"lead.channel":    "💬 *Preferred channel:* %s",
		"lead.route":      "📍 *Route:*",
		"lead.from":       "  From: %s",
		"lead.to":         "  To: %s",
		"lead.cargo":      "📦 *Cargo:*",
		"lead.cargo_type": "  Type: %s",
		"lead.weight":     "  Weight: %s kg",
		"lead.volume":     "  Volume: %s m³",
		"lead.places":     "  Pieces: %s",
		"lead.value":      "  Declared value: %s ₽",
		"lead.services":   "⚙️ *Extra services:*",
		"lead.comment":    "💬 *Comment:*",
		"lead.success":    "Thank you! Your request has been received. A manager will contact you shortly.",

		"error.invalid_route":    "Origin and destination cities must differ",
		"error.unknown_city":     "Choose a city from the list",
		"error.unknown_tier":     "Choose a delivery type",
		"error.negative":         "Weight, volume and dimensions cannot be negative",
		"error.out_of_range":     "Weight up to 1,000,000 kg, volume up to 10,000 m³, each side up to 100,000 cm",
		"error.required_contact": "Please fill in the required fields: name and phone",
		"error.consent":          "Please accept the privacy policy",
		"error.invalid_email":    "Enter a valid email address",
		"error.invalid_phone":    "Enter a valid phone number",
		"error.validation":       "Please check the form fields",
	},
}
