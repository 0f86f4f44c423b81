package refdata

// Zip-level profiles: county membership, display area, local risk multiplier
// against the county baseline (1.0 = county average), and theft risk, which
// can diverge from the county-wide rate.
var zipProfiles = map[string]ZipProfile{
	"90001": {County: "Los Angeles", Area: "Florence-Firestone", LocalRisk: 1.30, TheftRisk: TheftVeryHigh},
	"90002": {County: "Los Angeles", Area: "Watts", LocalRisk: 1.35, TheftRisk: TheftVeryHigh},
	"90003": {County: "Los Angeles", Area: "South LA", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"90004": {County: "Los Angeles", Area: "Los Feliz", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"90005": {County: "Los Angeles", Area: "Koreatown", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"90006": {County: "Los Angeles", Area: "Westlake", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"90007": {County: "Los Angeles", Area: "University Park", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"90008": {County: "Los Angeles", Area: "Baldwin Hills", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"90010": {County: "Los Angeles", Area: "Mid-Wilshire", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"90011": {County: "Los Angeles", Area: "South Central LA", LocalRisk: 1.32, TheftRisk: TheftVeryHigh},
	"90012": {County: "Los Angeles", Area: "Downtown LA", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"90013": {County: "Los Angeles", Area: "Downtown LA", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"90014": {County: "Los Angeles", Area: "Downtown LA", LocalRisk: 1.24, TheftRisk: TheftVeryHigh},
	"90015": {County: "Los Angeles", Area: "Downtown LA", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"90016": {County: "Los Angeles", Area: "West Adams", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"90017": {County: "Los Angeles", Area: "Downtown LA", LocalRisk: 1.20, TheftRisk: TheftVeryHigh},
	"90018": {County: "Los Angeles", Area: "Jefferson Park", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"90019": {County: "Los Angeles", Area: "Mid-City", LocalRisk: 1.10, TheftRisk: TheftMedium},
	"90020": {County: "Los Angeles", Area: "Koreatown", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"90022": {County: "Los Angeles", Area: "East LA", LocalRisk: 1.25, TheftRisk: TheftHigh},
	"90023": {County: "Los Angeles", Area: "East LA", LocalRisk: 1.28, TheftRisk: TheftHigh},
	"90024": {County: "Los Angeles", Area: "Westwood", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"90025": {County: "Los Angeles", Area: "West LA", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"90026": {County: "Los Angeles", Area: "Echo Park", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"90027": {County: "Los Angeles", Area: "Los Feliz", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"90028": {County: "Los Angeles", Area: "Hollywood", LocalRisk: 1.18, TheftRisk: TheftVeryHigh},
	"90029": {County: "Los Angeles", Area: "Thai Town", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"90031": {County: "Los Angeles", Area: "Lincoln Heights", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"90032": {County: "Los Angeles", Area: "El Sereno", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"90033": {County: "Los Angeles", Area: "Boyle Heights", LocalRisk: 1.25, TheftRisk: TheftHigh},
	"90034": {County: "Los Angeles", Area: "Palms", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90035": {County: "Los Angeles", Area: "Carthay", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"90036": {County: "Los Angeles", Area: "Fairfax", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"90037": {County: "Los Angeles", Area: "Vermont Square", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"90038": {County: "Los Angeles", Area: "Hollywood", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"90039": {County: "Los Angeles", Area: "Silver Lake", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"90040": {County: "Los Angeles", Area: "Commerce", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"90041": {County: "Los Angeles", Area: "Eagle Rock", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"90042": {County: "Los Angeles", Area: "Highland Park", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"90043": {County: "Los Angeles", Area: "View Park", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"90044": {County: "Los Angeles", Area: "Athens", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"90045": {County: "Los Angeles", Area: "Westchester", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90046": {County: "Los Angeles", Area: "West Hollywood Hills", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90047": {County: "Los Angeles", Area: "South LA", LocalRisk: 1.25, TheftRisk: TheftHigh},
	"90048": {County: "Los Angeles", Area: "Beverly Grove", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90049": {County: "Los Angeles", Area: "Brentwood", LocalRisk: 0.82, TheftRisk: TheftLow},
	"90056": {County: "Los Angeles", Area: "Ladera Heights", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"90057": {County: "Los Angeles", Area: "Pico-Union", LocalRisk: 1.25, TheftRisk: TheftHigh},
	"90058": {County: "Los Angeles", Area: "Vernon", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"90059": {County: "Los Angeles", Area: "Willowbrook", LocalRisk: 1.30, TheftRisk: TheftVeryHigh},
	"90061": {County: "Los Angeles", Area: "Athens-Westmont", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"90062": {County: "Los Angeles", Area: "South LA", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"90063": {County: "Los Angeles", Area: "East LA", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"90064": {County: "Los Angeles", Area: "Rancho Park", LocalRisk: 0.88, TheftRisk: TheftLow},
	"90065": {County: "Los Angeles", Area: "Cypress Park", LocalRisk: 1.10, TheftRisk: TheftMedium},
	"90066": {County: "Los Angeles", Area: "Mar Vista", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"90067": {County: "Los Angeles", Area: "Century City", LocalRisk: 0.85, TheftRisk: TheftMedium},
	"90068": {County: "Los Angeles", Area: "Hollywood Hills", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"90069": {County: "Los Angeles", Area: "West Hollywood", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90071": {County: "Los Angeles", Area: "Downtown LA", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"90077": {County: "Los Angeles", Area: "Bel Air", LocalRisk: 0.78, TheftRisk: TheftLow},
	"90210": {County: "Los Angeles", Area: "Beverly Hills", LocalRisk: 0.78, TheftRisk: TheftMedium},
	"90211": {County: "Los Angeles", Area: "Beverly Hills", LocalRisk: 0.82, TheftRisk: TheftMedium},
	"90212": {County: "Los Angeles", Area: "Beverly Hills", LocalRisk: 0.80, TheftRisk: TheftMedium},
	"90230": {County: "Los Angeles", Area: "Culver City", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90232": {County: "Los Angeles", Area: "Culver City", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"90245": {County: "Los Angeles", Area: "El Segundo", LocalRisk: 0.85, TheftRisk: TheftLow},
	"90247": {County: "Los Angeles", Area: "Gardena", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"90248": {County: "Los Angeles", Area: "Gardena", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"90249": {County: "Los Angeles", Area: "Gardena", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"90250": {County: "Los Angeles", Area: "Hawthorne", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"90254": {County: "Los Angeles", Area: "Hermosa Beach", LocalRisk: 0.82, TheftRisk: TheftLow},
	"90260": {County: "Los Angeles", Area: "Lawndale", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"90261": {County: "Los Angeles", Area: "Lawndale", LocalRisk: 1.10, TheftRisk: TheftMedium},
	"90266": {County: "Los Angeles", Area: "Manhattan Beach", LocalRisk: 0.78, TheftRisk: TheftLow},
	"90274": {County: "Los Angeles", Area: "Palos Verdes", LocalRisk: 0.72, TheftRisk: TheftLow},
	"90275": {County: "Los Angeles", Area: "Rancho Palos Verdes", LocalRisk: 0.72, TheftRisk: TheftLow},
	"90277": {County: "Los Angeles", Area: "Redondo Beach", LocalRisk: 0.85, TheftRisk: TheftLow},
	"90278": {County: "Los Angeles", Area: "Redondo Beach", LocalRisk: 0.85, TheftRisk: TheftLow},
	"90291": {County: "Los Angeles", Area: "Venice", LocalRisk: 1.02, TheftRisk: TheftHigh},
	"90292": {County: "Los Angeles", Area: "Marina del Rey", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"90293": {County: "Los Angeles", Area: "Playa del Rey", LocalRisk: 0.85, TheftRisk: TheftLow},
	"90301": {County: "Los Angeles", Area: "Inglewood", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"90302": {County: "Los Angeles", Area: "Inglewood", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"90303": {County: "Los Angeles", Area: "Inglewood", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"90304": {County: "Los Angeles", Area: "Lennox", LocalRisk: 1.25, TheftRisk: TheftHigh},
	"90401": {County: "Los Angeles", Area: "Santa Monica", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"90402": {County: "Los Angeles", Area: "Santa Monica", LocalRisk: 0.82, TheftRisk: TheftLow},
	"90403": {County: "Los Angeles", Area: "Santa Monica", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"90404": {County: "Los Angeles", Area: "Santa Monica", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"90405": {County: "Los Angeles", Area: "Santa Monica", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"90501": {County: "Los Angeles", Area: "Torrance", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"90502": {County: "Los Angeles", Area: "Torrance", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"90503": {County: "Los Angeles", Area: "Torrance", LocalRisk: 0.85, TheftRisk: TheftLow},
	"90504": {County: "Los Angeles", Area: "Torrance", LocalRisk: 0.88, TheftRisk: TheftLow},
	"90505": {County: "Los Angeles", Area: "Torrance", LocalRisk: 0.82, TheftRisk: TheftLow},
	"90601": {County: "Los Angeles", Area: "Whittier", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"90602": {County: "Los Angeles", Area: "Whittier", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90603": {County: "Los Angeles", Area: "Whittier", LocalRisk: 0.88, TheftRisk: TheftLow},
	"90604": {County: "Los Angeles", Area: "Whittier", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"90605": {County: "Los Angeles", Area: "Whittier", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90606": {County: "Los Angeles", Area: "Whittier", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"90620": {County: "Orange", Area: "Buena Park", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"90621": {County: "Orange", Area: "Buena Park", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"90630": {County: "Orange", Area: "Cypress", LocalRisk: 0.90, TheftRisk: TheftLow},
	"90631": {County: "Los Angeles", Area: "La Habra", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90638": {County: "Los Angeles", Area: "La Mirada", LocalRisk: 0.90, TheftRisk: TheftLow},
	"90650": {County: "Los Angeles", Area: "Norwalk", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"90660": {County: "Los Angeles", Area: "Pico Rivera", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"90670": {County: "Los Angeles", Area: "Santa Fe Springs", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"90706": {County: "Los Angeles", Area: "Bellflower", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"90712": {County: "Los Angeles", Area: "Lakewood", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"90713": {County: "Los Angeles", Area: "Lakewood", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90715": {County: "Los Angeles", Area: "Lakewood", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"90716": {County: "Los Angeles", Area: "Hawaiian Gardens", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"90717": {County: "Los Angeles", Area: "Lomita", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"90731": {County: "Los Angeles", Area: "San Pedro", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"90732": {County: "Los Angeles", Area: "San Pedro", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90740": {County: "Orange", Area: "Seal Beach", LocalRisk: 0.80, TheftRisk: TheftLow},
	"90744": {County: "Los Angeles", Area: "Wilmington", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"90745": {County: "Los Angeles", Area: "Carson", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"90746": {County: "Los Angeles", Area: "Carson", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"90802": {County: "Los Angeles", Area: "Long Beach", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"90803": {County: "Los Angeles", Area: "Long Beach (Belmont Shore)", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"90804": {County: "Los Angeles", Area: "Long Beach", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"90805": {County: "Los Angeles", Area: "North Long Beach", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"90806": {County: "Los Angeles", Area: "Long Beach", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"90807": {County: "Los Angeles", Area: "Long Beach (Bixby Knolls)", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"90808": {County: "Los Angeles", Area: "Long Beach (East)", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"90810": {County: "Los Angeles", Area: "Long Beach", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"90813": {County: "Los Angeles", Area: "Long Beach", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"90814": {County: "Los Angeles", Area: "Long Beach (Alamitos Beach)", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"90815": {County: "Los Angeles", Area: "Long Beach (East)", LocalRisk: 0.90, TheftRisk: TheftLow},
	"91001": {County: "Los Angeles", Area: "Altadena", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"91006": {County: "Los Angeles", Area: "Arcadia", LocalRisk: 0.85, TheftRisk: TheftLow},
	"91007": {County: "Los Angeles", Area: "Arcadia", LocalRisk: 0.85, TheftRisk: TheftLow},
	"91010": {County: "Los Angeles", Area: "Duarte", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"91011": {County: "Los Angeles", Area: "La Canada Flintridge", LocalRisk: 0.75, TheftRisk: TheftLow},
	"91016": {County: "Los Angeles", Area: "Monrovia", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"91024": {County: "Los Angeles", Area: "Sierra Madre", LocalRisk: 0.78, TheftRisk: TheftLow},
	"91030": {County: "Los Angeles", Area: "South Pasadena", LocalRisk: 0.85, TheftRisk: TheftLow},
	"91101": {County: "Los Angeles", Area: "Pasadena", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"91103": {County: "Los Angeles", Area: "Pasadena", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"91104": {County: "Los Angeles", Area: "Pasadena", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"91105": {County: "Los Angeles", Area: "Pasadena", LocalRisk: 0.82, TheftRisk: TheftLow},
	"91106": {County: "Los Angeles", Area: "Pasadena", LocalRisk: 0.85, TheftRisk: TheftLow},
	"91107": {County: "Los Angeles", Area: "Pasadena", LocalRisk: 0.88, TheftRisk: TheftLow},
	"91108": {County: "Los Angeles", Area: "San Marino", LocalRisk: 0.75, TheftRisk: TheftLow},
	"91201": {County: "Los Angeles", Area: "Glendale", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"91202": {County: "Los Angeles", Area: "Glendale", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"91203": {County: "Los Angeles", Area: "Glendale", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"91204": {County: "Los Angeles", Area: "Glendale", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"91205": {County: "Los Angeles", Area: "Glendale", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"91206": {County: "Los Angeles", Area: "Glendale", LocalRisk: 0.95, TheftRisk: TheftLow},
	"91301": {County: "Los Angeles", Area: "Agoura Hills", LocalRisk: 0.82, TheftRisk: TheftLow},
	"91302": {County: "Los Angeles", Area: "Calabasas", LocalRisk: 0.78, TheftRisk: TheftLow},
	"91303": {County: "Los Angeles", Area: "Canoga Park", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"91304": {County: "Los Angeles", Area: "Canoga Park", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"91306": {County: "Los Angeles", Area: "Winnetka", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"91307": {County: "Los Angeles", Area: "West Hills", LocalRisk: 0.88, TheftRisk: TheftLow},
	"91311": {County: "Los Angeles", Area: "Chatsworth", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"91316": {County: "Los Angeles", Area: "Encino", LocalRisk: 0.85, TheftRisk: TheftLow},
	"91321": {County: "Los Angeles", Area: "Newhall", LocalRisk: 0.90, TheftRisk: TheftLow},
	"91324": {County: "Los Angeles", Area: "Northridge", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"91325": {County: "Los Angeles", Area: "Northridge", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"91326": {County: "Los Angeles", Area: "Porter Ranch", LocalRisk: 0.82, TheftRisk: TheftLow},
	"91330": {County: "Los Angeles", Area: "Northridge (CSUN)", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"91331": {County: "Los Angeles", Area: "Pacoima", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"91335": {County: "Los Angeles", Area: "Reseda", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"91340": {County: "Los Angeles", Area: "San Fernando", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"91342": {County: "Los Angeles", Area: "Sylmar", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"91343": {County: "Los Angeles", Area: "North Hills", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"91344": {County: "Los Angeles", Area: "Granada Hills", LocalRisk: 0.90, TheftRisk: TheftLow},
	"91345": {County: "Los Angeles", Area: "Mission Hills", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"91350": {County: "Los Angeles", Area: "Santa Clarita", LocalRisk: 0.82, TheftRisk: TheftLow},
	"91351": {County: "Los Angeles", Area: "Canyon Country", LocalRisk: 0.88, TheftRisk: TheftLow},
	"91352": {County: "Los Angeles", Area: "Sun Valley", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"91354": {County: "Los Angeles", Area: "Valencia", LocalRisk: 0.80, TheftRisk: TheftLow},
	"91355": {County: "Los Angeles", Area: "Valencia", LocalRisk: 0.80, TheftRisk: TheftLow},
	"91356": {County: "Los Angeles", Area: "Tarzana", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"91360": {County: "Ventura", Area: "Thousand Oaks", LocalRisk: 0.78, TheftRisk: TheftLow},
	"91361": {County: "Ventura", Area: "Westlake Village", LocalRisk: 0.75, TheftRisk: TheftLow},
	"91362": {County: "Ventura", Area: "Thousand Oaks", LocalRisk: 0.78, TheftRisk: TheftLow},
	"91364": {County: "Los Angeles", Area: "Woodland Hills", LocalRisk: 0.88, TheftRisk: TheftLow},
	"91367": {County: "Los Angeles", Area: "Woodland Hills", LocalRisk: 0.88, TheftRisk: TheftLow},
	"91381": {County: "Los Angeles", Area: "Stevenson Ranch", LocalRisk: 0.80, TheftRisk: TheftLow},
	"91384": {County: "Los Angeles", Area: "Castaic", LocalRisk: 0.82, TheftRisk: TheftLow},
	"91401": {County: "Los Angeles", Area: "Van Nuys", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"91402": {County: "Los Angeles", Area: "Panorama City", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"91403": {County: "Los Angeles", Area: "Sherman Oaks", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"91405": {County: "Los Angeles", Area: "Van Nuys", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"91406": {County: "Los Angeles", Area: "Van Nuys", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"91411": {County: "Los Angeles", Area: "Van Nuys", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"91423": {County: "Los Angeles", Area: "Sherman Oaks", LocalRisk: 0.88, TheftRisk: TheftLow},
	"91436": {County: "Los Angeles", Area: "Encino", LocalRisk: 0.82, TheftRisk: TheftLow},
	"91501": {County: "Los Angeles", Area: "Burbank", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"91502": {County: "Los Angeles", Area: "Burbank", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"91504": {County: "Los Angeles", Area: "Burbank", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"91505": {County: "Los Angeles", Area: "Burbank", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"91506": {County: "Los Angeles", Area: "Burbank", LocalRisk: 0.90, TheftRisk: TheftLow},
	"91601": {County: "Los Angeles", Area: "North Hollywood", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"91602": {County: "Los Angeles", Area: "North Hollywood", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"91604": {County: "Los Angeles", Area: "Studio City", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"91605": {County: "Los Angeles", Area: "North Hollywood", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"91606": {County: "Los Angeles", Area: "North Hollywood", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"91607": {County: "Los Angeles", Area: "Valley Village", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"91608": {County: "Los Angeles", Area: "Universal City", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"91701": {County: "San Bernardino", Area: "Rancho Cucamonga", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"91709": {County: "San Bernardino", Area: "Chino Hills", LocalRisk: 0.82, TheftRisk: TheftLow},
	"91710": {County: "San Bernardino", Area: "Chino", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"91730": {County: "San Bernardino", Area: "Rancho Cucamonga", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"91737": {County: "San Bernardino", Area: "Rancho Cucamonga", LocalRisk: 0.85, TheftRisk: TheftLow},
	"91739": {County: "San Bernardino", Area: "Rancho Cucamonga", LocalRisk: 0.85, TheftRisk: TheftLow},
	"91740": {County: "Los Angeles", Area: "Glendora", LocalRisk: 0.85, TheftRisk: TheftLow},
	"91741": {County: "Los Angeles", Area: "Glendora", LocalRisk: 0.82, TheftRisk: TheftLow},
	"91750": {County: "Los Angeles", Area: "La Verne", LocalRisk: 0.85, TheftRisk: TheftLow},
	"91761": {County: "San Bernardino", Area: "Ontario", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"91762": {County: "San Bernardino", Area: "Ontario", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"91763": {County: "Los Angeles", Area: "Montclair", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"91764": {County: "San Bernardino", Area: "Ontario", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"91766": {County: "Los Angeles", Area: "Pomona", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"91767": {County: "Los Angeles", Area: "Pomona", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"91768": {County: "Los Angeles", Area: "Pomona", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"91784": {County: "San Bernardino", Area: "Upland", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"91786": {County: "Los Angeles", Area: "Upland", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"91789": {County: "Los Angeles", Area: "Walnut", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92008": {County: "San Diego", Area: "Carlsbad", LocalRisk: 0.80, TheftRisk: TheftLow},
	"92009": {County: "San Diego", Area: "Carlsbad", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92010": {County: "San Diego", Area: "Carlsbad", LocalRisk: 0.80, TheftRisk: TheftLow},
	"92011": {County: "San Diego", Area: "Carlsbad", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92014": {County: "San Diego", Area: "Del Mar", LocalRisk: 0.72, TheftRisk: TheftLow},
	"92024": {County: "San Diego", Area: "Encinitas", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92025": {County: "San Diego", Area: "Escondido", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"92026": {County: "San Diego", Area: "Escondido", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"92027": {County: "San Diego", Area: "Escondido", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92028": {County: "San Diego", Area: "Fallbrook", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92029": {County: "San Diego", Area: "Escondido", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92054": {County: "San Diego", Area: "Oceanside", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"92056": {County: "San Diego", Area: "Oceanside", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"92057": {County: "San Diego", Area: "Oceanside", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"92058": {County: "San Diego", Area: "Oceanside", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"92064": {County: "San Diego", Area: "Poway", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92069": {County: "San Diego", Area: "San Marcos", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92071": {County: "San Diego", Area: "Santee", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92075": {County: "San Diego", Area: "Solana Beach", LocalRisk: 0.75, TheftRisk: TheftLow},
	"92078": {County: "San Diego", Area: "San Marcos", LocalRisk: 0.85, TheftRisk: TheftLow},
	"92083": {County: "San Diego", Area: "Vista", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"92084": {County: "San Diego", Area: "Vista", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"92101": {County: "San Diego", Area: "Downtown San Diego", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"92102": {County: "San Diego", Area: "Golden Hill", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"92103": {County: "San Diego", Area: "Hillcrest", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"92104": {County: "San Diego", Area: "North Park", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"92105": {County: "San Diego", Area: "City Heights", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"92106": {County: "San Diego", Area: "Point Loma", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92107": {County: "San Diego", Area: "Ocean Beach", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92108": {County: "San Diego", Area: "Mission Valley", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"92109": {County: "San Diego", Area: "Pacific Beach", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"92110": {County: "San Diego", Area: "Morena", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"92111": {County: "San Diego", Area: "Linda Vista", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"92113": {County: "San Diego", Area: "Logan Heights", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"92114": {County: "San Diego", Area: "Encanto", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"92115": {County: "San Diego", Area: "College Area", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92116": {County: "San Diego", Area: "Normal Heights", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"92117": {County: "San Diego", Area: "Clairemont", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92118": {County: "San Diego", Area: "Coronado", LocalRisk: 0.72, TheftRisk: TheftLow},
	"92119": {County: "San Diego", Area: "San Carlos", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92120": {County: "San Diego", Area: "Del Cerro", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92121": {County: "San Diego", Area: "Sorrento Valley", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92122": {County: "San Diego", Area: "University City", LocalRisk: 0.85, TheftRisk: TheftLow},
	"92123": {County: "San Diego", Area: "Serra Mesa", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"92124": {County: "San Diego", Area: "Tierrasanta", LocalRisk: 0.85, TheftRisk: TheftLow},
	"92126": {County: "San Diego", Area: "Mira Mesa", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"92127": {County: "San Diego", Area: "Rancho Bernardo", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92128": {County: "San Diego", Area: "Rancho Bernardo", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92129": {County: "San Diego", Area: "Rancho Penasquitos", LocalRisk: 0.80, TheftRisk: TheftLow},
	"92130": {County: "San Diego", Area: "Carmel Valley", LocalRisk: 0.75, TheftRisk: TheftLow},
	"92131": {County: "San Diego", Area: "Scripps Ranch", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92139": {County: "San Diego", Area: "Paradise Hills", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"92154": {County: "San Diego", Area: "Otay Mesa", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"92173": {County: "San Diego", Area: "San Ysidro", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"92201": {County: "Riverside", Area: "Indio", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92203": {County: "Riverside", Area: "Indio", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92210": {County: "Riverside", Area: "Indian Wells", LocalRisk: 0.72, TheftRisk: TheftLow},
	"92211": {County: "Riverside", Area: "Palm Desert", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92220": {County: "Riverside", Area: "Banning", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92223": {County: "Riverside", Area: "Beaumont", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92227": {County: "Imperial", Area: "Brawley", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92231": {County: "Imperial", Area: "Calexico", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"92234": {County: "Riverside", Area: "Cathedral City", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"92236": {County: "Riverside", Area: "Coachella", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"92240": {County: "Riverside", Area: "Desert Hot Springs", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"92243": {County: "Imperial", Area: "El Centro", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"92249": {County: "Imperial", Area: "Heber", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"92251": {County: "Imperial", Area: "Imperial", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"92253": {County: "Riverside", Area: "La Quinta", LocalRisk: 0.80, TheftRisk: TheftLow},
	"92260": {County: "Riverside", Area: "Palm Desert", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92262": {County: "Riverside", Area: "Palm Springs", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92264": {County: "Riverside", Area: "Palm Springs", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92270": {County: "Riverside", Area: "Rancho Mirage", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92276": {County: "Riverside", Area: "Thousand Palms", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"92307": {County: "San Bernardino", Area: "Apple Valley", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"92308": {County: "San Bernardino", Area: "Apple Valley", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"92313": {County: "San Bernardino", Area: "Grand Terrace", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"92316": {County: "San Bernardino", Area: "Bloomington", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"92324": {County: "San Bernardino", Area: "Colton", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92335": {County: "San Bernardino", Area: "Fontana", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"92336": {County: "San Bernardino", Area: "Fontana", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92337": {County: "San Bernardino", Area: "Fontana", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"92345": {County: "San Bernardino", Area: "Hesperia", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92346": {County: "San Bernardino", Area: "Highland", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"92352": {County: "San Bernardino", Area: "Lake Arrowhead", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92354": {County: "San Bernardino", Area: "Loma Linda", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92371": {County: "San Bernardino", Area: "Phelan", LocalRisk: 0.90, TheftRisk: TheftLow},
	"92373": {County: "San Bernardino", Area: "Redlands", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92374": {County: "San Bernardino", Area: "Redlands", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"92376": {County: "San Bernardino", Area: "Rialto", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"92377": {County: "San Bernardino", Area: "Rialto", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92392": {County: "San Bernardino", Area: "Victorville", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"92394": {County: "San Bernardino", Area: "Victorville", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92395": {County: "San Bernardino", Area: "Victorville", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"92399": {County: "San Bernardino", Area: "Yucaipa", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92401": {County: "San Bernardino", Area: "San Bernardino", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"92404": {County: "San Bernardino", Area: "San Bernardino", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"92405": {County: "San Bernardino", Area: "San Bernardino", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"92407": {County: "San Bernardino", Area: "San Bernardino", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92408": {County: "San Bernardino", Area: "San Bernardino", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"92410": {County: "San Bernardino", Area: "San Bernardino", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"92411": {County: "San Bernardino", Area: "San Bernardino", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"92501": {County: "Riverside", Area: "Riverside", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"92503": {County: "Riverside", Area: "Riverside (Arlington)", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"92504": {County: "Riverside", Area: "Riverside", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92505": {County: "Riverside", Area: "Riverside", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92506": {County: "Riverside", Area: "Riverside (Canyon Crest)", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92507": {County: "Riverside", Area: "Riverside", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"92508": {County: "Riverside", Area: "Riverside (Mission Grove)", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"92530": {County: "Riverside", Area: "Lake Elsinore", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"92532": {County: "Riverside", Area: "Lake Elsinore", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"92536": {County: "Riverside", Area: "Aguanga", LocalRisk: 0.85, TheftRisk: TheftLow},
	"92543": {County: "Riverside", Area: "Hemet", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92544": {County: "Riverside", Area: "Hemet", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"92545": {County: "Riverside", Area: "Hemet", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"92551": {County: "Riverside", Area: "Moreno Valley", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"92553": {County: "Riverside", Area: "Moreno Valley", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"92555": {County: "Riverside", Area: "Moreno Valley", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"92557": {County: "Riverside", Area: "Moreno Valley", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92562": {County: "Riverside", Area: "Murrieta", LocalRisk: 0.85, TheftRisk: TheftLow},
	"92563": {County: "Riverside", Area: "Murrieta", LocalRisk: 0.85, TheftRisk: TheftLow},
	"92570": {County: "Riverside", Area: "Perris", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92571": {County: "Riverside", Area: "Perris", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"92582": {County: "Riverside", Area: "San Jacinto", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"92583": {County: "Riverside", Area: "San Jacinto", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"92585": {County: "Riverside", Area: "Menifee", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92586": {County: "Riverside", Area: "Menifee", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92587": {County: "Riverside", Area: "Menifee", LocalRisk: 0.90, TheftRisk: TheftLow},
	"92590": {County: "Riverside", Area: "Temecula", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92591": {County: "Riverside", Area: "Temecula", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92592": {County: "Riverside", Area: "Temecula", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92596": {County: "Riverside", Area: "Winchester", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92602": {County: "Orange", Area: "Irvine", LocalRisk: 0.75, TheftRisk: TheftLow},
	"92603": {County: "Orange", Area: "Irvine (Turtle Rock)", LocalRisk: 0.70, TheftRisk: TheftLow},
	"92604": {County: "Orange", Area: "Irvine", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92606": {County: "Orange", Area: "Irvine", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92610": {County: "Orange", Area: "Foothill Ranch", LocalRisk: 0.75, TheftRisk: TheftLow},
	"92612": {County: "Orange", Area: "Irvine (UCI)", LocalRisk: 0.80, TheftRisk: TheftLow},
	"92614": {County: "Orange", Area: "Irvine", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92618": {County: "Orange", Area: "Irvine (Spectrum)", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92620": {County: "Orange", Area: "Irvine (Northwood)", LocalRisk: 0.75, TheftRisk: TheftLow},
	"92624": {County: "Orange", Area: "Capistrano Beach", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92625": {County: "Orange", Area: "Corona del Mar", LocalRisk: 0.72, TheftRisk: TheftLow},
	"92626": {County: "Orange", Area: "Costa Mesa", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"92627": {County: "Orange", Area: "Costa Mesa", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"92630": {County: "Orange", Area: "Lake Forest", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92637": {County: "Orange", Area: "Laguna Woods", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92646": {County: "Orange", Area: "Huntington Beach", LocalRisk: 0.85, TheftRisk: TheftLow},
	"92647": {County: "Orange", Area: "Huntington Beach", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"92648": {County: "Orange", Area: "Huntington Beach", LocalRisk: 0.85, TheftRisk: TheftLow},
	"92649": {County: "Orange", Area: "Huntington Beach", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92651": {County: "Orange", Area: "Laguna Beach", LocalRisk: 0.75, TheftRisk: TheftLow},
	"92653": {County: "Orange", Area: "Laguna Hills", LocalRisk: 0.80, TheftRisk: TheftLow},
	"92655": {County: "Orange", Area: "Midway City", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"92656": {County: "Orange", Area: "Aliso Viejo", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92657": {County: "Orange", Area: "Newport Coast", LocalRisk: 0.70, TheftRisk: TheftLow},
	"92660": {County: "Orange", Area: "Newport Beach", LocalRisk: 0.72, TheftRisk: TheftLow},
	"92661": {County: "Orange", Area: "Newport Beach (Balboa)", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92663": {County: "Orange", Area: "Newport Beach", LocalRisk: 0.75, TheftRisk: TheftLow},
	"92672": {County: "Orange", Area: "San Clemente", LocalRisk: 0.80, TheftRisk: TheftLow},
	"92673": {County: "Orange", Area: "San Clemente", LocalRisk: 0.80, TheftRisk: TheftLow},
	"92675": {County: "Orange", Area: "San Juan Capistrano", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92677": {County: "Orange", Area: "Laguna Niguel", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92679": {County: "Orange", Area: "Coto de Caza", LocalRisk: 0.72, TheftRisk: TheftLow},
	"92688": {County: "Orange", Area: "Rancho Santa Margarita", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92691": {County: "Orange", Area: "Mission Viejo", LocalRisk: 0.80, TheftRisk: TheftLow},
	"92692": {County: "Orange", Area: "Mission Viejo", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92701": {County: "Orange", Area: "Santa Ana", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"92703": {County: "Orange", Area: "Santa Ana", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"92704": {County: "Orange", Area: "Santa Ana", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"92705": {County: "Orange", Area: "Santa Ana", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"92706": {County: "Orange", Area: "Santa Ana", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92707": {County: "Orange", Area: "Santa Ana", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"92708": {County: "Orange", Area: "Fountain Valley", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92780": {County: "Orange", Area: "Tustin", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92782": {County: "Orange", Area: "Tustin Ranch", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92801": {County: "Orange", Area: "Anaheim", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"92802": {County: "Orange", Area: "Anaheim (Resort)", LocalRisk: 1.08, TheftRisk: TheftHigh},
	"92804": {County: "Orange", Area: "Anaheim", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92805": {County: "Orange", Area: "Anaheim", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"92806": {County: "Orange", Area: "Anaheim", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92807": {County: "Orange", Area: "Anaheim Hills", LocalRisk: 0.82, TheftRisk: TheftLow},
	"92808": {County: "Orange", Area: "Anaheim Hills", LocalRisk: 0.80, TheftRisk: TheftLow},
	"92821": {County: "Orange", Area: "Brea", LocalRisk: 0.85, TheftRisk: TheftLow},
	"92831": {County: "Orange", Area: "Fullerton", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92832": {County: "Orange", Area: "Fullerton", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"92833": {County: "Orange", Area: "Fullerton", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"92835": {County: "Orange", Area: "Fullerton", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92840": {County: "Orange", Area: "Garden Grove", LocalRisk: 1.08, TheftRisk: TheftHigh},
	"92841": {County: "Orange", Area: "Garden Grove", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"92843": {County: "Orange", Area: "Garden Grove", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"92844": {County: "Orange", Area: "Garden Grove", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"92845": {County: "Orange", Area: "Garden Grove", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"92860": {County: "Riverside", Area: "Norco", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"92861": {County: "Orange", Area: "Villa Park", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92865": {County: "Orange", Area: "Orange", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"92866": {County: "Orange", Area: "Orange", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"92867": {County: "Orange", Area: "Orange", LocalRisk: 0.88, TheftRisk: TheftLow},
	"92868": {County: "Orange", Area: "Orange", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"92869": {County: "Orange", Area: "Orange", LocalRisk: 0.85, TheftRisk: TheftLow},
	"92870": {County: "Orange", Area: "Placentia", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"92886": {County: "Orange", Area: "Yorba Linda", LocalRisk: 0.78, TheftRisk: TheftLow},
	"92887": {County: "Orange", Area: "Yorba Linda", LocalRisk: 0.78, TheftRisk: TheftLow},
	"93001": {County: "Ventura", Area: "Ventura", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"93003": {County: "Ventura", Area: "Ventura", LocalRisk: 0.88, TheftRisk: TheftLow},
	"93004": {County: "Ventura", Area: "Ventura", LocalRisk: 0.90, TheftRisk: TheftLow},
	"93010": {County: "Ventura", Area: "Camarillo", LocalRisk: 0.82, TheftRisk: TheftLow},
	"93012": {County: "Ventura", Area: "Camarillo", LocalRisk: 0.80, TheftRisk: TheftLow},
	"93015": {County: "Ventura", Area: "Fillmore", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"93021": {County: "Ventura", Area: "Moorpark", LocalRisk: 0.80, TheftRisk: TheftLow},
	"93030": {County: "Ventura", Area: "Oxnard", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"93033": {County: "Ventura", Area: "Oxnard", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"93035": {County: "Ventura", Area: "Oxnard", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93036": {County: "Ventura", Area: "Oxnard", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"93040": {County: "Ventura", Area: "Santa Paula", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"93060": {County: "Ventura", Area: "Santa Paula", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"93063": {County: "Ventura", Area: "Simi Valley", LocalRisk: 0.82, TheftRisk: TheftLow},
	"93065": {County: "Ventura", Area: "Simi Valley", LocalRisk: 0.80, TheftRisk: TheftLow},
	"93101": {County: "Santa Barbara", Area: "Santa Barbara (Downtown)", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"93103": {County: "Santa Barbara", Area: "Santa Barbara (East)", LocalRisk: 0.92, TheftRisk: TheftLow},
	"93105": {County: "Santa Barbara", Area: "Santa Barbara (Mission)", LocalRisk: 0.82, TheftRisk: TheftLow},
	"93108": {County: "Santa Barbara", Area: "Montecito", LocalRisk: 0.72, TheftRisk: TheftLow},
	"93109": {County: "Santa Barbara", Area: "Santa Barbara (Mesa)", LocalRisk: 0.88, TheftRisk: TheftLow},
	"93110": {County: "Santa Barbara", Area: "Santa Barbara", LocalRisk: 0.90, TheftRisk: TheftLow},
	"93111": {County: "Santa Barbara", Area: "Santa Barbara", LocalRisk: 0.88, TheftRisk: TheftLow},
	"93117": {County: "Santa Barbara", Area: "Goleta", LocalRisk: 0.85, TheftRisk: TheftLow},
	"93221": {County: "Tulare", Area: "Exeter", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"93230": {County: "Kings", Area: "Hanford", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93232": {County: "Kings", Area: "Hanford", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"93245": {County: "Kings", Area: "Lemoore", LocalRisk: 0.92, TheftRisk: TheftLow},
	"93247": {County: "Tulare", Area: "Lindsay", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93257": {County: "Tulare", Area: "Porterville", LocalRisk: 1.10, TheftRisk: TheftMedium},
	"93274": {County: "Tulare", Area: "Tulare", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"93277": {County: "Tulare", Area: "Visalia", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"93291": {County: "Tulare", Area: "Visalia", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"93292": {County: "Tulare", Area: "Visalia", LocalRisk: 0.88, TheftRisk: TheftLow},
	"93301": {County: "Kern", Area: "Bakersfield", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"93304": {County: "Kern", Area: "Bakersfield", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"93305": {County: "Kern", Area: "Bakersfield", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"93306": {County: "Kern", Area: "Bakersfield", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93307": {County: "Kern", Area: "Bakersfield", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"93309": {County: "Kern", Area: "Bakersfield", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"93311": {County: "Kern", Area: "Bakersfield", LocalRisk: 0.85, TheftRisk: TheftLow},
	"93312": {County: "Kern", Area: "Bakersfield", LocalRisk: 0.82, TheftRisk: TheftLow},
	"93313": {County: "Kern", Area: "Bakersfield", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"93314": {County: "Kern", Area: "Bakersfield", LocalRisk: 0.80, TheftRisk: TheftLow},
	"93401": {County: "San Luis Obispo", Area: "San Luis Obispo", LocalRisk: 0.92, TheftRisk: TheftLow},
	"93402": {County: "San Luis Obispo", Area: "Los Osos", LocalRisk: 0.85, TheftRisk: TheftLow},
	"93405": {County: "San Luis Obispo", Area: "San Luis Obispo", LocalRisk: 0.90, TheftRisk: TheftLow},
	"93410": {County: "San Luis Obispo", Area: "San Luis Obispo (Cal Poly)", LocalRisk: 0.95, TheftRisk: TheftLow},
	"93420": {County: "San Luis Obispo", Area: "Arroyo Grande", LocalRisk: 0.85, TheftRisk: TheftLow},
	"93422": {County: "San Luis Obispo", Area: "Atascadero", LocalRisk: 0.90, TheftRisk: TheftLow},
	"93428": {County: "San Luis Obispo", Area: "Cambria", LocalRisk: 0.78, TheftRisk: TheftLow},
	"93433": {County: "San Luis Obispo", Area: "Grover Beach", LocalRisk: 0.92, TheftRisk: TheftLow},
	"93436": {County: "Santa Barbara", Area: "Lompoc", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93444": {County: "San Luis Obispo", Area: "Nipomo", LocalRisk: 0.88, TheftRisk: TheftLow},
	"93446": {County: "San Luis Obispo", Area: "Paso Robles", LocalRisk: 0.95, TheftRisk: TheftLow},
	"93449": {County: "San Luis Obispo", Area: "Pismo Beach", LocalRisk: 0.85, TheftRisk: TheftLow},
	"93454": {County: "Santa Barbara", Area: "Santa Maria", LocalRisk: 1.10, TheftRisk: TheftMedium},
	"93455": {County: "Santa Barbara", Area: "Santa Maria", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93458": {County: "Santa Barbara", Area: "Santa Maria", LocalRisk: 1.12, TheftRisk: TheftMedium},
	"93465": {County: "San Luis Obispo", Area: "Templeton", LocalRisk: 0.82, TheftRisk: TheftLow},
	"93611": {County: "Fresno", Area: "Clovis", LocalRisk: 0.85, TheftRisk: TheftLow},
	"93612": {County: "Fresno", Area: "Clovis", LocalRisk: 0.88, TheftRisk: TheftLow},
	"93619": {County: "Fresno", Area: "Clovis", LocalRisk: 0.82, TheftRisk: TheftLow},
	"93620": {County: "Merced", Area: "Dos Palos", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"93625": {County: "Fresno", Area: "Fowler", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"93630": {County: "Fresno", Area: "Kerman", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93631": {County: "Fresno", Area: "Kingsburg", LocalRisk: 0.90, TheftRisk: TheftLow},
	"93635": {County: "Merced", Area: "Los Banos", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"93636": {County: "Fresno", Area: "Madera Ranchos", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"93637": {County: "Madera", Area: "Madera", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"93638": {County: "Madera", Area: "Madera", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93644": {County: "Madera", Area: "Oakhurst", LocalRisk: 0.82, TheftRisk: TheftLow},
	"93650": {County: "Fresno", Area: "Fresno (North)", LocalRisk: 0.85, TheftRisk: TheftLow},
	"93657": {County: "Fresno", Area: "Reedley", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"93662": {County: "Fresno", Area: "Selma", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"93668": {County: "Fresno", Area: "Tranquillity", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93701": {County: "Fresno", Area: "Fresno (Downtown)", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"93702": {County: "Fresno", Area: "Fresno (East)", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"93703": {County: "Fresno", Area: "Fresno (Tower District)", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"93704": {County: "Fresno", Area: "Fresno (Fig Garden)", LocalRisk: 0.88, TheftRisk: TheftLow},
	"93705": {County: "Fresno", Area: "Fresno (West)", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"93706": {County: "Fresno", Area: "Fresno (Southwest)", LocalRisk: 1.25, TheftRisk: TheftHigh},
	"93710": {County: "Fresno", Area: "Fresno (North)", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"93711": {County: "Fresno", Area: "Fresno (North)", LocalRisk: 0.82, TheftRisk: TheftLow},
	"93720": {County: "Fresno", Area: "Fresno (Northeast)", LocalRisk: 0.78, TheftRisk: TheftLow},
	"93721": {County: "Fresno", Area: "Fresno (Downtown)", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"93722": {County: "Fresno", Area: "Fresno (West)", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"93723": {County: "Fresno", Area: "Fresno (West)", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"93725": {County: "Fresno", Area: "Fresno (South)", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"93726": {County: "Fresno", Area: "Fresno", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"93727": {County: "Fresno", Area: "Fresno (East)", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"93728": {County: "Fresno", Area: "Fresno (West)", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"93730": {County: "Fresno", Area: "Fresno (Copper River)", LocalRisk: 0.78, TheftRisk: TheftLow},
	"93901": {County: "Monterey", Area: "Salinas", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"93905": {County: "Monterey", Area: "Salinas (East)", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"93906": {County: "Monterey", Area: "Salinas (North)", LocalRisk: 1.12, TheftRisk: TheftMedium},
	"93907": {County: "Monterey", Area: "Salinas (North)", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93908": {County: "Monterey", Area: "Salinas", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"93923": {County: "Monterey", Area: "Carmel", LocalRisk: 0.72, TheftRisk: TheftLow},
	"93933": {County: "Monterey", Area: "Marina", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"93940": {County: "Monterey", Area: "Monterey", LocalRisk: 0.88, TheftRisk: TheftLow},
	"93950": {County: "Monterey", Area: "Pacific Grove", LocalRisk: 0.82, TheftRisk: TheftLow},
	"93955": {County: "Monterey", Area: "Seaside", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"93960": {County: "Monterey", Area: "Soledad", LocalRisk: 1.10, TheftRisk: TheftMedium},
	"94002": {County: "San Mateo", Area: "Belmont", LocalRisk: 0.82, TheftRisk: TheftLow},
	"94010": {County: "San Mateo", Area: "Burlingame", LocalRisk: 0.80, TheftRisk: TheftLow},
	"94014": {County: "San Mateo", Area: "Daly City", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"94015": {County: "San Mateo", Area: "Daly City", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"94019": {County: "San Mateo", Area: "Half Moon Bay", LocalRisk: 0.80, TheftRisk: TheftLow},
	"94022": {County: "Santa Clara", Area: "Los Altos", LocalRisk: 0.72, TheftRisk: TheftLow},
	"94024": {County: "Santa Clara", Area: "Los Altos", LocalRisk: 0.72, TheftRisk: TheftLow},
	"94025": {County: "San Mateo", Area: "Menlo Park", LocalRisk: 0.82, TheftRisk: TheftLow},
	"94027": {County: "San Mateo", Area: "Atherton", LocalRisk: 0.70, TheftRisk: TheftLow},
	"94028": {County: "San Mateo", Area: "Portola Valley", LocalRisk: 0.70, TheftRisk: TheftLow},
	"94030": {County: "San Mateo", Area: "Millbrae", LocalRisk: 0.85, TheftRisk: TheftLow},
	"94040": {County: "Santa Clara", Area: "Mountain View", LocalRisk: 0.85, TheftRisk: TheftMedium},
	"94041": {County: "Santa Clara", Area: "Mountain View", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"94043": {County: "Santa Clara", Area: "Mountain View", LocalRisk: 0.85, TheftRisk: TheftMedium},
	"94044": {County: "San Mateo", Area: "Pacifica", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94061": {County: "San Mateo", Area: "Redwood City", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"94062": {County: "San Mateo", Area: "Redwood City", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94063": {County: "San Mateo", Area: "Redwood City", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"94065": {County: "San Mateo", Area: "Redwood Shores", LocalRisk: 0.78, TheftRisk: TheftLow},
	"94066": {County: "San Mateo", Area: "San Bruno", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"94070": {County: "San Mateo", Area: "San Carlos", LocalRisk: 0.80, TheftRisk: TheftLow},
	"94080": {County: "San Mateo", Area: "South San Francisco", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"94085": {County: "Santa Clara", Area: "Sunnyvale", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"94086": {County: "Santa Clara", Area: "Sunnyvale", LocalRisk: 0.85, TheftRisk: TheftMedium},
	"94087": {County: "Santa Clara", Area: "Sunnyvale", LocalRisk: 0.82, TheftRisk: TheftLow},
	"94089": {County: "Santa Clara", Area: "Sunnyvale", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"94102": {County: "San Francisco", Area: "Civic Center/Tenderloin", LocalRisk: 1.30, TheftRisk: TheftVeryHigh},
	"94103": {County: "San Francisco", Area: "SoMa", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"94104": {County: "San Francisco", Area: "Financial District", LocalRisk: 1.10, TheftRisk: TheftVeryHigh},
	"94105": {County: "San Francisco", Area: "Rincon Hill", LocalRisk: 1.12, TheftRisk: TheftVeryHigh},
	"94107": {County: "San Francisco", Area: "Potrero Hill", LocalRisk: 1.08, TheftRisk: TheftHigh},
	"94108": {County: "San Francisco", Area: "Chinatown/Nob Hill", LocalRisk: 1.15, TheftRisk: TheftVeryHigh},
	"94109": {County: "San Francisco", Area: "Russian Hill/Polk", LocalRisk: 1.12, TheftRisk: TheftVeryHigh},
	"94110": {County: "San Francisco", Area: "Mission District", LocalRisk: 1.18, TheftRisk: TheftVeryHigh},
	"94112": {County: "San Francisco", Area: "Ingleside/Excelsior", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"94114": {County: "San Francisco", Area: "Castro", LocalRisk: 1.00, TheftRisk: TheftHigh},
	"94115": {County: "San Francisco", Area: "Pacific Heights", LocalRisk: 0.88, TheftRisk: TheftHigh},
	"94116": {County: "San Francisco", Area: "Sunset", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"94117": {County: "San Francisco", Area: "Haight-Ashbury", LocalRisk: 1.08, TheftRisk: TheftHigh},
	"94118": {County: "San Francisco", Area: "Inner Richmond", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"94121": {County: "San Francisco", Area: "Outer Richmond", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"94122": {County: "San Francisco", Area: "Outer Sunset", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"94123": {County: "San Francisco", Area: "Marina", LocalRisk: 0.92, TheftRisk: TheftHigh},
	"94124": {County: "San Francisco", Area: "Bayview/Hunters Point", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"94127": {County: "San Francisco", Area: "West Portal", LocalRisk: 0.82, TheftRisk: TheftLow},
	"94131": {County: "San Francisco", Area: "Twin Peaks/Glen Park", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"94132": {County: "San Francisco", Area: "Lake Merced/SFSU", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"94133": {County: "San Francisco", Area: "North Beach", LocalRisk: 1.05, TheftRisk: TheftHigh},
	"94134": {County: "San Francisco", Area: "Visitacion Valley", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"94401": {County: "San Mateo", Area: "San Mateo", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"94402": {County: "San Mateo", Area: "San Mateo", LocalRisk: 0.85, TheftRisk: TheftLow},
	"94403": {County: "San Mateo", Area: "San Mateo", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94404": {County: "San Mateo", Area: "Foster City", LocalRisk: 0.80, TheftRisk: TheftLow},
	"94501": {County: "Alameda", Area: "Alameda", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"94503": {County: "Napa", Area: "American Canyon", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"94506": {County: "Contra Costa", Area: "Danville", LocalRisk: 0.75, TheftRisk: TheftLow},
	"94507": {County: "Contra Costa", Area: "Alamo", LocalRisk: 0.72, TheftRisk: TheftLow},
	"94509": {County: "Contra Costa", Area: "Antioch", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"94510": {County: "Solano", Area: "Benicia", LocalRisk: 0.85, TheftRisk: TheftLow},
	"94513": {County: "Contra Costa", Area: "Brentwood", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"94515": {County: "Napa", Area: "Calistoga", LocalRisk: 0.82, TheftRisk: TheftLow},
	"94517": {County: "Contra Costa", Area: "Clayton", LocalRisk: 0.78, TheftRisk: TheftLow},
	"94518": {County: "Contra Costa", Area: "Concord", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"94519": {County: "Contra Costa", Area: "Concord", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"94520": {County: "Contra Costa", Area: "Concord", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"94521": {County: "Contra Costa", Area: "Concord", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"94523": {County: "Contra Costa", Area: "Pleasant Hill", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94525": {County: "Contra Costa", Area: "Crockett", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"94526": {County: "Contra Costa", Area: "Danville", LocalRisk: 0.75, TheftRisk: TheftLow},
	"94530": {County: "Contra Costa", Area: "El Cerrito", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"94531": {County: "Contra Costa", Area: "Antioch", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"94533": {County: "Solano", Area: "Fairfield", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"94534": {County: "Solano", Area: "Fairfield (Green Valley)", LocalRisk: 0.85, TheftRisk: TheftLow},
	"94535": {County: "Solano", Area: "Travis AFB", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94536": {County: "Alameda", Area: "Fremont", LocalRisk: 0.85, TheftRisk: TheftLow},
	"94538": {County: "Alameda", Area: "Fremont", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"94539": {County: "Alameda", Area: "Fremont (Mission San Jose)", LocalRisk: 0.80, TheftRisk: TheftLow},
	"94541": {County: "Alameda", Area: "Hayward", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"94544": {County: "Alameda", Area: "Hayward", LocalRisk: 1.08, TheftRisk: TheftHigh},
	"94545": {County: "Alameda", Area: "Hayward", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"94546": {County: "Alameda", Area: "Castro Valley", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94547": {County: "Contra Costa", Area: "Hercules", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"94549": {County: "Contra Costa", Area: "Lafayette", LocalRisk: 0.75, TheftRisk: TheftLow},
	"94550": {County: "Alameda", Area: "Livermore", LocalRisk: 0.82, TheftRisk: TheftLow},
	"94551": {County: "Alameda", Area: "Livermore", LocalRisk: 0.85, TheftRisk: TheftLow},
	"94553": {County: "Contra Costa", Area: "Martinez", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"94555": {County: "Alameda", Area: "Fremont (Warm Springs)", LocalRisk: 0.85, TheftRisk: TheftLow},
	"94556": {County: "Contra Costa", Area: "Moraga", LocalRisk: 0.72, TheftRisk: TheftLow},
	"94558": {County: "Napa", Area: "Napa", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"94559": {County: "Napa", Area: "Napa", LocalRisk: 0.95, TheftRisk: TheftLow},
	"94560": {County: "Alameda", Area: "Newark", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"94561": {County: "Contra Costa", Area: "Oakley", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"94563": {County: "Contra Costa", Area: "Orinda", LocalRisk: 0.70, TheftRisk: TheftLow},
	"94564": {County: "Contra Costa", Area: "Pinole", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"94565": {County: "Contra Costa", Area: "Pittsburg", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"94566": {County: "Alameda", Area: "Pleasanton", LocalRisk: 0.75, TheftRisk: TheftLow},
	"94568": {County: "Alameda", Area: "Dublin", LocalRisk: 0.78, TheftRisk: TheftLow},
	"94572": {County: "Contra Costa", Area: "Rodeo", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"94574": {County: "Napa", Area: "St. Helena", LocalRisk: 0.78, TheftRisk: TheftLow},
	"94577": {County: "Alameda", Area: "San Leandro", LocalRisk: 1.05, TheftRisk: TheftHigh},
	"94578": {County: "Alameda", Area: "San Leandro", LocalRisk: 1.02, TheftRisk: TheftHigh},
	"94579": {County: "Alameda", Area: "San Leandro", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"94580": {County: "Alameda", Area: "San Lorenzo", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"94583": {County: "Contra Costa", Area: "San Ramon", LocalRisk: 0.75, TheftRisk: TheftLow},
	"94585": {County: "Solano", Area: "Suisun City", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"94587": {County: "Alameda", Area: "Union City", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"94588": {County: "Alameda", Area: "Pleasanton", LocalRisk: 0.75, TheftRisk: TheftLow},
	"94589": {County: "Solano", Area: "Vallejo", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"94590": {County: "Solano", Area: "Vallejo", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"94591": {County: "Solano", Area: "Vallejo", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"94595": {County: "Contra Costa", Area: "Walnut Creek", LocalRisk: 0.78, TheftRisk: TheftLow},
	"94596": {County: "Contra Costa", Area: "Walnut Creek", LocalRisk: 0.80, TheftRisk: TheftLow},
	"94597": {County: "Contra Costa", Area: "Walnut Creek", LocalRisk: 0.78, TheftRisk: TheftLow},
	"94598": {County: "Contra Costa", Area: "Walnut Creek", LocalRisk: 0.78, TheftRisk: TheftLow},
	"94601": {County: "Alameda", Area: "Oakland (Fruitvale)", LocalRisk: 1.30, TheftRisk: TheftVeryHigh},
	"94602": {County: "Alameda", Area: "Oakland (Dimond)", LocalRisk: 1.05, TheftRisk: TheftHigh},
	"94603": {County: "Alameda", Area: "Oakland (East Oakland)", LocalRisk: 1.35, TheftRisk: TheftVeryHigh},
	"94605": {County: "Alameda", Area: "Oakland (Seminary)", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"94606": {County: "Alameda", Area: "Oakland (San Antonio)", LocalRisk: 1.22, TheftRisk: TheftVeryHigh},
	"94607": {County: "Alameda", Area: "Oakland (West Oakland)", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"94608": {County: "Alameda", Area: "Emeryville", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"94609": {County: "Alameda", Area: "Oakland (Temescal)", LocalRisk: 1.05, TheftRisk: TheftHigh},
	"94610": {County: "Alameda", Area: "Oakland (Grand Lake)", LocalRisk: 1.00, TheftRisk: TheftHigh},
	"94611": {County: "Alameda", Area: "Oakland (Montclair)", LocalRisk: 0.82, TheftRisk: TheftMedium},
	"94612": {County: "Alameda", Area: "Oakland (Downtown)", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"94618": {County: "Alameda", Area: "Oakland (Rockridge)", LocalRisk: 0.88, TheftRisk: TheftHigh},
	"94619": {County: "Alameda", Area: "Oakland (Redwood Heights)", LocalRisk: 1.00, TheftRisk: TheftHigh},
	"94621": {County: "Alameda", Area: "Oakland (East Oakland)", LocalRisk: 1.32, TheftRisk: TheftVeryHigh},
	"94702": {County: "Alameda", Area: "Berkeley", LocalRisk: 1.02, TheftRisk: TheftHigh},
	"94703": {County: "Alameda", Area: "Berkeley", LocalRisk: 1.00, TheftRisk: TheftHigh},
	"94704": {County: "Alameda", Area: "Berkeley (UC)", LocalRisk: 1.05, TheftRisk: TheftHigh},
	"94705": {County: "Alameda", Area: "Berkeley (Elmwood)", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"94706": {County: "Alameda", Area: "Albany", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"94707": {County: "Alameda", Area: "Berkeley (North)", LocalRisk: 0.85, TheftRisk: TheftMedium},
	"94708": {County: "Alameda", Area: "Kensington", LocalRisk: 0.80, TheftRisk: TheftLow},
	"94710": {County: "Alameda", Area: "Berkeley (West)", LocalRisk: 1.05, TheftRisk: TheftHigh},
	"94801": {County: "Contra Costa", Area: "Richmond", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"94803": {County: "Contra Costa", Area: "El Sobrante", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"94804": {County: "Contra Costa", Area: "Richmond", LocalRisk: 1.22, TheftRisk: TheftVeryHigh},
	"94805": {County: "Contra Costa", Area: "Richmond (Point)", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"94806": {County: "Contra Costa", Area: "San Pablo", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"94850": {County: "Contra Costa", Area: "Richmond (Marina Bay)", LocalRisk: 1.05, TheftRisk: TheftHigh},
	"94901": {County: "Marin", Area: "San Rafael", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"94903": {County: "Marin", Area: "San Rafael (Terra Linda)", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94904": {County: "Marin", Area: "Greenbrae", LocalRisk: 0.78, TheftRisk: TheftLow},
	"94920": {County: "Marin", Area: "Tiburon", LocalRisk: 0.70, TheftRisk: TheftLow},
	"94925": {County: "Marin", Area: "Corte Madera", LocalRisk: 0.80, TheftRisk: TheftLow},
	"94928": {County: "Sonoma", Area: "Rohnert Park", LocalRisk: 0.92, TheftRisk: TheftLow},
	"94929": {County: "Marin", Area: "Dillon Beach", LocalRisk: 0.75, TheftRisk: TheftLow},
	"94930": {County: "Marin", Area: "Fairfax", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94931": {County: "Sonoma", Area: "Cotati", LocalRisk: 0.90, TheftRisk: TheftLow},
	"94939": {County: "Marin", Area: "Larkspur", LocalRisk: 0.80, TheftRisk: TheftLow},
	"94941": {County: "Marin", Area: "Mill Valley", LocalRisk: 0.78, TheftRisk: TheftLow},
	"94945": {County: "Marin", Area: "Novato", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94947": {County: "Marin", Area: "Novato", LocalRisk: 0.90, TheftRisk: TheftLow},
	"94949": {County: "Marin", Area: "Novato", LocalRisk: 0.85, TheftRisk: TheftLow},
	"94951": {County: "Sonoma", Area: "Penngrove", LocalRisk: 0.82, TheftRisk: TheftLow},
	"94952": {County: "Sonoma", Area: "Petaluma", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94954": {County: "Sonoma", Area: "Petaluma", LocalRisk: 0.88, TheftRisk: TheftLow},
	"94960": {County: "Marin", Area: "San Anselmo", LocalRisk: 0.82, TheftRisk: TheftLow},
	"94965": {County: "Marin", Area: "Sausalito", LocalRisk: 0.82, TheftRisk: TheftMedium},
	"95002": {County: "Santa Clara", Area: "Alviso", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95003": {County: "Santa Cruz", Area: "Aptos", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95008": {County: "Santa Clara", Area: "Campbell", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"95010": {County: "Santa Cruz", Area: "Capitola", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95014": {County: "Santa Clara", Area: "Cupertino", LocalRisk: 0.78, TheftRisk: TheftLow},
	"95020": {County: "Santa Clara", Area: "Gilroy", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95023": {County: "San Benito", Area: "Hollister", LocalRisk: 1.00, TheftRisk: TheftLow},
	"95030": {County: "Santa Clara", Area: "Los Gatos", LocalRisk: 0.75, TheftRisk: TheftLow},
	"95032": {County: "Santa Clara", Area: "Los Gatos", LocalRisk: 0.75, TheftRisk: TheftLow},
	"95035": {County: "Santa Clara", Area: "Milpitas", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95037": {County: "Santa Clara", Area: "Morgan Hill", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95046": {County: "Santa Clara", Area: "San Martin", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95050": {County: "Santa Clara", Area: "Santa Clara", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95051": {County: "Santa Clara", Area: "Santa Clara", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"95054": {County: "Santa Clara", Area: "Santa Clara", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"95060": {County: "Santa Cruz", Area: "Santa Cruz", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95062": {County: "Santa Cruz", Area: "Santa Cruz", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"95065": {County: "Santa Cruz", Area: "Santa Cruz (Scotts Valley)", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95066": {County: "Santa Cruz", Area: "Scotts Valley", LocalRisk: 0.80, TheftRisk: TheftLow},
	"95070": {County: "Santa Clara", Area: "Saratoga", LocalRisk: 0.72, TheftRisk: TheftLow},
	"95073": {County: "Santa Cruz", Area: "Soquel", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95076": {County: "Santa Cruz", Area: "Watsonville", LocalRisk: 1.15, TheftRisk: TheftMedium},
	"95110": {County: "Santa Clara", Area: "San Jose (Downtown)", LocalRisk: 1.20, TheftRisk: TheftVeryHigh},
	"95111": {County: "Santa Clara", Area: "San Jose (South)", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"95112": {County: "Santa Clara", Area: "San Jose (Japantown)", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"95113": {County: "Santa Clara", Area: "San Jose (Downtown)", LocalRisk: 1.18, TheftRisk: TheftVeryHigh},
	"95116": {County: "Santa Clara", Area: "San Jose (East)", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"95117": {County: "Santa Clara", Area: "San Jose (West)", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95118": {County: "Santa Clara", Area: "San Jose (Cambrian)", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"95119": {County: "Santa Clara", Area: "San Jose (Blossom Valley)", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"95120": {County: "Santa Clara", Area: "San Jose (Almaden Valley)", LocalRisk: 0.78, TheftRisk: TheftLow},
	"95121": {County: "Santa Clara", Area: "San Jose (East Foothills)", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"95122": {County: "Santa Clara", Area: "San Jose (East)", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"95123": {County: "Santa Clara", Area: "San Jose (Blossom Valley)", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"95124": {County: "Santa Clara", Area: "San Jose (Cambrian)", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95125": {County: "Santa Clara", Area: "San Jose (Willow Glen)", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"95126": {County: "Santa Clara", Area: "San Jose (The Alameda)", LocalRisk: 1.05, TheftRisk: TheftHigh},
	"95127": {County: "Santa Clara", Area: "San Jose (East Foothills)", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"95128": {County: "Santa Clara", Area: "San Jose (West)", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95129": {County: "Santa Clara", Area: "San Jose (West Valley)", LocalRisk: 0.80, TheftRisk: TheftLow},
	"95130": {County: "Santa Clara", Area: "San Jose (West)", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95131": {County: "Santa Clara", Area: "San Jose (North)", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"95132": {County: "Santa Clara", Area: "San Jose (Berryessa)", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95133": {County: "Santa Clara", Area: "San Jose (Alum Rock)", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"95134": {County: "Santa Clara", Area: "San Jose (North)", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"95135": {County: "Santa Clara", Area: "San Jose (Evergreen)", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95136": {County: "Santa Clara", Area: "San Jose (Snell)", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95138": {County: "Santa Clara", Area: "San Jose (South)", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95139": {County: "Santa Clara", Area: "San Jose (Bernal)", LocalRisk: 0.88, TheftRisk: TheftMedium},
	"95140": {County: "Santa Clara", Area: "San Jose (Mt Hamilton)", LocalRisk: 0.78, TheftRisk: TheftLow},
	"95148": {County: "Santa Clara", Area: "San Jose (Evergreen)", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95201": {County: "San Joaquin", Area: "Stockton (Downtown)", LocalRisk: 1.30, TheftRisk: TheftVeryHigh},
	"95202": {County: "San Joaquin", Area: "Stockton (Downtown)", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"95203": {County: "San Joaquin", Area: "Stockton (South)", LocalRisk: 1.22, TheftRisk: TheftVeryHigh},
	"95204": {County: "San Joaquin", Area: "Stockton (Pacific)", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"95205": {County: "San Joaquin", Area: "Stockton (East)", LocalRisk: 1.28, TheftRisk: TheftVeryHigh},
	"95206": {County: "San Joaquin", Area: "Stockton (South)", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"95207": {County: "San Joaquin", Area: "Stockton (North)", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95209": {County: "San Joaquin", Area: "Stockton (Lincoln Village)", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95210": {County: "San Joaquin", Area: "Stockton (North)", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"95211": {County: "San Joaquin", Area: "Stockton (UOP)", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95212": {County: "San Joaquin", Area: "Stockton (East)", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"95219": {County: "San Joaquin", Area: "Stockton (Brookside)", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95220": {County: "San Joaquin", Area: "Acampo", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95227": {County: "San Joaquin", Area: "Lockeford", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95230": {County: "San Joaquin", Area: "Linden", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95231": {County: "San Joaquin", Area: "French Camp", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"95234": {County: "San Joaquin", Area: "Holt", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"95236": {County: "San Joaquin", Area: "Lathrop", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95240": {County: "San Joaquin", Area: "Lodi", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"95242": {County: "San Joaquin", Area: "Lodi", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95301": {County: "Merced", Area: "Atwater", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95304": {County: "San Joaquin", Area: "Tracy", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95307": {County: "Stanislaus", Area: "Ceres", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"95313": {County: "Stanislaus", Area: "Crows Landing", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95315": {County: "Merced", Area: "Delhi", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"95316": {County: "Stanislaus", Area: "Denair", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95319": {County: "Stanislaus", Area: "Empire", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95326": {County: "Stanislaus", Area: "Hughson", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95330": {County: "San Joaquin", Area: "Lathrop", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95336": {County: "San Joaquin", Area: "Manteca", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95337": {County: "San Joaquin", Area: "Manteca", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"95340": {County: "Merced", Area: "Merced", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"95341": {County: "Merced", Area: "Merced", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95348": {County: "Merced", Area: "Merced", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95350": {County: "Stanislaus", Area: "Modesto", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"95351": {County: "Stanislaus", Area: "Modesto (South)", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"95354": {County: "Stanislaus", Area: "Modesto (Downtown)", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"95355": {County: "Stanislaus", Area: "Modesto", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95356": {County: "Stanislaus", Area: "Modesto (North)", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95357": {County: "Stanislaus", Area: "Modesto (East)", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95358": {County: "Stanislaus", Area: "Modesto (West)", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"95363": {County: "Stanislaus", Area: "Patterson", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95367": {County: "Stanislaus", Area: "Riverbank", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95376": {County: "San Joaquin", Area: "Tracy", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95377": {County: "San Joaquin", Area: "Tracy", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95380": {County: "Stanislaus", Area: "Turlock", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95382": {County: "Stanislaus", Area: "Turlock", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95386": {County: "Stanislaus", Area: "Waterford", LocalRisk: 0.92, TheftRisk: TheftLow},
	"95391": {County: "San Joaquin", Area: "Tracy (Mountain House)", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95401": {County: "Sonoma", Area: "Santa Rosa", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95403": {County: "Sonoma", Area: "Santa Rosa", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95404": {County: "Sonoma", Area: "Santa Rosa", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"95405": {County: "Sonoma", Area: "Santa Rosa", LocalRisk: 0.95, TheftRisk: TheftLow},
	"95407": {County: "Sonoma", Area: "Santa Rosa", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"95409": {County: "Sonoma", Area: "Santa Rosa (Oakmont)", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95425": {County: "Sonoma", Area: "Cloverdale", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95436": {County: "Sonoma", Area: "Forestville", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95448": {County: "Sonoma", Area: "Healdsburg", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95452": {County: "Sonoma", Area: "Kenwood", LocalRisk: 0.78, TheftRisk: TheftLow},
	"95472": {County: "Sonoma", Area: "Sebastopol", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95476": {County: "Sonoma", Area: "Sonoma", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95492": {County: "Sonoma", Area: "Windsor", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95501": {County: "Humboldt", Area: "Eureka", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"95503": {County: "Humboldt", Area: "Eureka", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95519": {County: "Humboldt", Area: "McKinleyville", LocalRisk: 0.92, TheftRisk: TheftLow},
	"95521": {County: "Humboldt", Area: "Arcata", LocalRisk: 0.95, TheftRisk: TheftLow},
	"95540": {County: "Humboldt", Area: "Fortuna", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95603": {County: "Placer", Area: "Auburn", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95605": {County: "Yolo", Area: "West Sacramento", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"95608": {County: "Sacramento", Area: "Carmichael", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95610": {County: "Sacramento", Area: "Citrus Heights", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95614": {County: "El Dorado", Area: "Cool", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95615": {County: "Sacramento", Area: "Courtland", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95616": {County: "Yolo", Area: "Davis", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95618": {County: "Yolo", Area: "Davis", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95619": {County: "El Dorado", Area: "Diamond Springs", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95620": {County: "Solano", Area: "Dixon", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95621": {County: "Sacramento", Area: "Citrus Heights", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"95623": {County: "El Dorado", Area: "El Dorado", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95624": {County: "Sacramento", Area: "Elk Grove", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95626": {County: "Sacramento", Area: "Elverta", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95628": {County: "Sacramento", Area: "Fair Oaks", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95630": {County: "Sacramento", Area: "Folsom", LocalRisk: 0.78, TheftRisk: TheftLow},
	"95632": {County: "Sacramento", Area: "Galt", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95638": {County: "Sacramento", Area: "Herald", LocalRisk: 0.92, TheftRisk: TheftLow},
	"95648": {County: "Placer", Area: "Lincoln", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95650": {County: "Placer", Area: "Loomis", LocalRisk: 0.80, TheftRisk: TheftLow},
	"95655": {County: "Sacramento", Area: "Mather", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95660": {County: "Sacramento", Area: "North Highlands", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"95661": {County: "Placer", Area: "Roseville", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"95662": {County: "Sacramento", Area: "Orangevale", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95667": {County: "El Dorado", Area: "Placerville", LocalRisk: 0.92, TheftRisk: TheftLow},
	"95670": {County: "Sacramento", Area: "Rancho Cordova", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"95671": {County: "Sacramento", Area: "Rancho Cordova", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95672": {County: "El Dorado", Area: "Rescue", LocalRisk: 0.80, TheftRisk: TheftLow},
	"95673": {County: "Sacramento", Area: "Rio Linda", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"95677": {County: "Placer", Area: "Rocklin", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95678": {County: "Placer", Area: "Roseville", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95682": {County: "El Dorado", Area: "Shingle Springs", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95683": {County: "Sacramento", Area: "Sloughhouse", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95687": {County: "Solano", Area: "Vacaville", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95688": {County: "Solano", Area: "Vacaville", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95691": {County: "Yolo", Area: "West Sacramento", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95693": {County: "Sacramento", Area: "Wilton", LocalRisk: 0.80, TheftRisk: TheftLow},
	"95694": {County: "Yolo", Area: "Winters", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95695": {County: "Yolo", Area: "Woodland", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"95726": {County: "El Dorado", Area: "Pollock Pines", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95742": {County: "Sacramento", Area: "Rancho Cordova", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95746": {County: "Placer", Area: "Granite Bay", LocalRisk: 0.75, TheftRisk: TheftLow},
	"95747": {County: "Placer", Area: "Roseville (West)", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95757": {County: "Sacramento", Area: "Elk Grove", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95758": {County: "Sacramento", Area: "Elk Grove", LocalRisk: 0.90, TheftRisk: TheftMedium},
	"95762": {County: "El Dorado", Area: "El Dorado Hills", LocalRisk: 0.75, TheftRisk: TheftLow},
	"95765": {County: "Placer", Area: "Rocklin", LocalRisk: 0.82, TheftRisk: TheftLow},
	"95776": {County: "Yolo", Area: "Woodland", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95811": {County: "Sacramento", Area: "Sacramento (Midtown)", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"95814": {County: "Sacramento", Area: "Sacramento (Downtown)", LocalRisk: 1.20, TheftRisk: TheftVeryHigh},
	"95815": {County: "Sacramento", Area: "Sacramento (North)", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"95816": {County: "Sacramento", Area: "Sacramento (East)", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95817": {County: "Sacramento", Area: "Sacramento (Oak Park)", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"95818": {County: "Sacramento", Area: "Sacramento (Land Park)", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95819": {County: "Sacramento", Area: "Sacramento (East)", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95820": {County: "Sacramento", Area: "Sacramento (South)", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"95821": {County: "Sacramento", Area: "Sacramento (Arden)", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"95822": {County: "Sacramento", Area: "Sacramento (South)", LocalRisk: 1.12, TheftRisk: TheftHigh},
	"95823": {County: "Sacramento", Area: "Sacramento (South)", LocalRisk: 1.20, TheftRisk: TheftHigh},
	"95824": {County: "Sacramento", Area: "Sacramento (South)", LocalRisk: 1.18, TheftRisk: TheftHigh},
	"95825": {County: "Sacramento", Area: "Sacramento (Arden)", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95826": {County: "Sacramento", Area: "Sacramento (College Greens)", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"95827": {County: "Sacramento", Area: "Sacramento (Rosemont)", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95828": {County: "Sacramento", Area: "Sacramento (Florin)", LocalRisk: 1.15, TheftRisk: TheftHigh},
	"95829": {County: "Sacramento", Area: "Sacramento (Vineyard)", LocalRisk: 0.92, TheftRisk: TheftMedium},
	"95831": {County: "Sacramento", Area: "Sacramento (Pocket)", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95832": {County: "Sacramento", Area: "Sacramento (Meadowview)", LocalRisk: 1.22, TheftRisk: TheftHigh},
	"95833": {County: "Sacramento", Area: "Sacramento (Natomas)", LocalRisk: 0.98, TheftRisk: TheftMedium},
	"95834": {County: "Sacramento", Area: "Sacramento (Natomas)", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95835": {County: "Sacramento", Area: "Sacramento (North Natomas)", LocalRisk: 0.90, TheftRisk: TheftLow},
	"95838": {County: "Sacramento", Area: "Sacramento (Del Paso Heights)", LocalRisk: 1.25, TheftRisk: TheftVeryHigh},
	"95841": {County: "Sacramento", Area: "Sacramento (Foothill Farms)", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"95842": {County: "Sacramento", Area: "Sacramento (Foothill Farms)", LocalRisk: 1.10, TheftRisk: TheftHigh},
	"95843": {County: "Sacramento", Area: "Antelope", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"95926": {County: "Butte", Area: "Chico", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"95928": {County: "Butte", Area: "Chico", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"95929": {County: "Butte", Area: "Chico (CSU)", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"95945": {County: "Nevada", Area: "Grass Valley", LocalRisk: 0.95, TheftRisk: TheftLow},
	"95949": {County: "Nevada", Area: "Grass Valley", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95959": {County: "Nevada", Area: "Nevada City", LocalRisk: 0.85, TheftRisk: TheftLow},
	"95965": {County: "Butte", Area: "Oroville", LocalRisk: 1.10, TheftRisk: TheftMedium},
	"95966": {County: "Butte", Area: "Oroville", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"95969": {County: "Butte", Area: "Paradise", LocalRisk: 0.88, TheftRisk: TheftLow},
	"95973": {County: "Butte", Area: "Chico", LocalRisk: 0.92, TheftRisk: TheftLow},
	"95991": {County: "Sutter", Area: "Yuba City", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"95993": {County: "Sutter", Area: "Yuba City", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"96001": {County: "Shasta", Area: "Redding", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"96002": {County: "Shasta", Area: "Redding", LocalRisk: 1.02, TheftRisk: TheftMedium},
	"96003": {County: "Shasta", Area: "Redding", LocalRisk: 1.00, TheftRisk: TheftMedium},
	"96007": {County: "Shasta", Area: "Anderson", LocalRisk: 1.08, TheftRisk: TheftMedium},
	"96019": {County: "Shasta", Area: "Shasta Lake", LocalRisk: 1.05, TheftRisk: TheftMedium},
	"96150": {County: "El Dorado", Area: "South Lake Tahoe", LocalRisk: 0.95, TheftRisk: TheftMedium},
	"96161": {County: "Nevada", Area: "Truckee", LocalRisk: 0.82, TheftRisk: TheftLow},
}
