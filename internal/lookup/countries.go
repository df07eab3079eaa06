package lookup

// countries lists every country value present in the match data.
var countries = []string{
	"Africa",
	"Albania",
	"Algeria",
	"Andorra",
	"Angola",
	"Argentina",
	"Armenia",
	"Aruba",
	"Asia",
	"Australia",
	"Austria",
	"Azerbaijan",
	"Bahrain",
	"Bangladesh",
	"Belarus",
	"Belgium",
	"Bolivia",
	"Bosnia",
	"Brazil",
	"Bulgaria",
	"Burundi",
	"Cambodia",
	"Cameroon",
	"Canada",
	"Chile",
	"China",
	"Colombia",
	"Costa Rica",
	"Croatia",
	"Cyprus",
	"Czech Republic",
	"DR Congo",
	"Denmark",
	"Ecuador",
	"Egypt",
	"El Salvador",
	"England",
	"Estonia",
	"Ethiopia",
	"Europe",
	"Faroe Islands",
	"Fiji",
	"Finland",
	"France",
	"Gambia",
	"Georgia",
	"Germany",
	"Ghana",
	"Gibraltar",
	"Greece",
	"Guatemala",
	"Honduras",
	"Hong Kong",
	"Hungary",
	"Iceland",
	"India",
	"Indonesia",
	"Iran",
	"Ireland",
	"Israel",
	"Italy",
	"Ivory Coast",
	"Jamaica",
	"Japan",
	"Jordan",
	"Kazakhstan",
	"Kenya",
	"Kosovo",
	"Kuwait",
	"Latvia",
	"Lebanon",
	"Liechtenstein",
	"Lithuania",
	"Luxembourg",
	"Malaysia",
	"Malta",
	"Mauritius",
	"Mexico",
	"Moldova",
	"Mongolia",
	"Montenegro",
	"Morocco",
	"Mozambique",
	"Myanmar",
	"Netherlands",
	"New Zealand",
	"Nicaragua",
	"Nigeria",
	"North & Central America",
	"North Macedonia",
	"Northern Ireland",
	"Norway",
	"Oman",
	"Oceania",
	"Pakistan",
	"Palestine",
	"Panama",
	"Paraguay",
	"Peru",
	"Philippines",
	"Poland",
	"Portugal",
	"Qatar",
	"Romania",
	"Russia",
	"Rwanda",
	"San Marino",
	"Saudi Arabia",
	"Scotland",
	"Senegal",
	"Serbia",
	"Singapore",
	"Slovakia",
	"Slovenia",
	"South America",
	"South Korea",
	"Spain",
	"Sweden",
	"Switzerland",
	"Syria",
	"Tajikistan",
	"Tanzania",
	"Thailand",
	"Trinidad and Tobago",
	"Tunisia",
	"Turkey",
	"Turkmenistan",
	"USA",
	"Uganda",
	"Ukraine",
	"United Arab Emirates",
	"Uruguay",
	"Uzbekistan",
	"Venezuela",
	"Vietnam",
	"Wales",
	"World",
	"Zambia",
	"Zimbabwe",
}
