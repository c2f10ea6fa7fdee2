package harbor

import "github.com/seaward-io/seaward/internal/geo"

// Seed returns the built-in reference list of major world ports. Used to
// populate the gazetteer when no database is configured, and mirrored by the
// harbors table migration.
func Seed() []Harbor {
	return []Harbor{
		{ID: "sg-singapore", Name: "Port of Singapore", Country: "Singapore", Position: geo.Coordinate{Lat: 1.2966, Lon: 103.7764}, Category: CategoryContainer},
		{ID: "cn-shanghai", Name: "Port of Shanghai", Country: "China", Position: geo.Coordinate{Lat: 31.2304, Lon: 121.4737}, Category: CategoryContainer},
		{ID: "us-losangeles", Name: "Port of Los Angeles", Country: "USA", Position: geo.Coordinate{Lat: 33.7175, Lon: -118.2728}, Category: CategoryContainer},
		{ID: "nl-rotterdam", Name: "Port of Rotterdam", Country: "Netherlands", Position: geo.Coordinate{Lat: 51.9225, Lon: 4.4792}, Category: CategoryContainer},
		{ID: "de-hamburg", Name: "Port of Hamburg", Country: "Germany", Position: geo.Coordinate{Lat: 53.5511, Lon: 9.9937}, Category: CategoryContainer},
		{ID: "be-antwerp", Name: "Port of Antwerp", Country: "Belgium", Position: geo.Coordinate{Lat: 51.2194, Lon: 4.4025}, Category: CategoryContainer},
		{ID: "kr-busan", Name: "Port of Busan", Country: "South Korea", Position: geo.Coordinate{Lat: 35.1796, Lon: 129.0756}, Category: CategoryContainer},
		{ID: "hk-hongkong", Name: "Port of Hong Kong", Country: "Hong Kong", Position: geo.Coordinate{Lat: 22.3193, Lon: 114.1694}, Category: CategoryContainer},
		{ID: "ae-dubai", Name: "Port of Dubai", Country: "UAE", Position: geo.Coordinate{Lat: 25.2048, Lon: 55.2708}, Category: CategoryContainer},
		{ID: "us-newyork", Name: "Port of New York", Country: "USA", Position: geo.Coordinate{Lat: 40.6892, Lon: -74.0445}, Category: CategoryContainer},
		{ID: "gb-london", Name: "Port of London", Country: "UK", Position: geo.Coordinate{Lat: 51.5074, Lon: -0.1278}, Category: CategoryCommercial},
		{ID: "fr-marseille", Name: "Port of Marseille", Country: "France", Position: geo.Coordinate{Lat: 43.2965, Lon: 5.3698}, Category: CategoryCommercial},
		{ID: "es-barcelona", Name: "Port of Barcelona", Country: "Spain", Position: geo.Coordinate{Lat: 41.3851, Lon: 2.1734}, Category: CategoryCommercial},
		{ID: "it-genoa", Name: "Port of Genoa", Country: "Italy", Position: geo.Coordinate{Lat: 44.4056, Lon: 8.9463}, Category: CategoryCommercial},
		{ID: "gr-piraeus", Name: "Port of Piraeus", Country: "Greece", Position: geo.Coordinate{Lat: 37.9755, Lon: 23.7348}, Category: CategoryCommercial},
		{ID: "nl-amsterdam", Name: "Port of Amsterdam", Country: "Netherlands", Position: geo.Coordinate{Lat: 52.3676, Lon: 4.9041}, Category: CategoryCommercial},
		{ID: "se-gothenburg", Name: "Port of Gothenburg", Country: "Sweden", Position: geo.Coordinate{Lat: 57.7089, Lon: 11.9746}, Category: CategoryCommercial},
		{ID: "no-oslo", Name: "Port of Oslo", Country: "Norway", Position: geo.Coordinate{Lat: 59.9139, Lon: 10.7522}, Category: CategoryCommercial},
		{ID: "dk-copenhagen", Name: "Port of Copenhagen", Country: "Denmark", Position: geo.Coordinate{Lat: 55.6761, Lon: 12.5683}, Category: CategoryCommercial},
		{ID: "fi-helsinki", Name: "Port of Helsinki", Country: "Finland", Position: geo.Coordinate{Lat: 60.1699, Lon: 24.9384}, Category: CategoryCommercial},
		{ID: "jp-tokyo", Name: "Port of Tokyo", Country: "Japan", Position: geo.Coordinate{Lat: 35.6762, Lon: 139.6503}, Category: CategoryCommercial},
		{ID: "jp-yokohama", Name: "Port of Yokohama", Country: "Japan", Position: geo.Coordinate{Lat: 35.4437, Lon: 139.6380}, Category: CategoryCommercial},
		{ID: "jp-kobe", Name: "Port of Kobe", Country: "Japan", Position: geo.Coordinate{Lat: 34.6901, Lon: 135.1956}, Category: CategoryCommercial},
		{ID: "in-mumbai", Name: "Port of Mumbai", Country: "India", Position: geo.Coordinate{Lat: 19.0760, Lon: 72.8777}, Category: CategoryCommercial},
		{ID: "in-chennai", Name: "Port of Chennai", Country: "India", Position: geo.Coordinate{Lat: 13.0827, Lon: 80.2707}, Category: CategoryCommercial},
		{ID: "in-kolkata", Name: "Port of Kolkata", Country: "India", Position: geo.Coordinate{Lat: 22.5726, Lon: 88.3639}, Category: CategoryCommercial},
		{ID: "lk-colombo", Name: "Port of Colombo", Country: "Sri Lanka", Position: geo.Coordinate{Lat: 6.9271, Lon: 79.8612}, Category: CategoryCommercial},
		{ID: "pk-karachi", Name: "Port of Karachi", Country: "Pakistan", Position: geo.Coordinate{Lat: 24.8607, Lon: 67.0011}, Category: CategoryCommercial},
		{ID: "bd-chittagong", Name: "Port of Chittagong", Country: "Bangladesh", Position: geo.Coordinate{Lat: 22.3569, Lon: 91.7832}, Category: CategoryCommercial},
		{ID: "th-bangkok", Name: "Port of Bangkok", Country: "Thailand", Position: geo.Coordinate{Lat: 13.7563, Lon: 100.5018}, Category: CategoryCommercial},
		{ID: "us-longbeach", Name: "Port of Long Beach", Country: "USA", Position: geo.Coordinate{Lat: 33.7701, Lon: -118.1937}, Category: CategoryContainer},
		{ID: "us-oakland", Name: "Port of Oakland", Country: "USA", Position: geo.Coordinate{Lat: 37.8044, Lon: -122.2712}, Category: CategoryContainer},
		{ID: "us-seattle", Name: "Port of Seattle", Country: "USA", Position: geo.Coordinate{Lat: 47.6062, Lon: -122.3321}, Category: CategoryCommercial},
		{ID: "ca-vancouver", Name: "Port of Vancouver", Country: "Canada", Position: geo.Coordinate{Lat: 49.2827, Lon: -123.1207}, Category: CategoryCommercial},
		{ID: "ca-montreal", Name: "Port of Montreal", Country: "Canada", Position: geo.Coordinate{Lat: 45.5017, Lon: -73.5673}, Category: CategoryCommercial},
		{ID: "ca-halifax", Name: "Port of Halifax", Country: "Canada", Position: geo.Coordinate{Lat: 44.6488, Lon: -63.5752}, Category: CategoryCommercial},
		{ID: "br-santos", Name: "Port of Santos", Country: "Brazil", Position: geo.Coordinate{Lat: -23.9618, Lon: -46.3322}, Category: CategoryCommercial},
		{ID: "ar-buenosaires", Name: "Port of Buenos Aires", Country: "Argentina", Position: geo.Coordinate{Lat: -34.6118, Lon: -58.3960}, Category: CategoryCommercial},
		{ID: "cl-valparaiso", Name: "Port of Valparaiso", Country: "Chile", Position: geo.Coordinate{Lat: -33.0458, Lon: -71.6197}, Category: CategoryCommercial},
		{ID: "pe-callao", Name: "Port of Callao", Country: "Peru", Position: geo.Coordinate{Lat: -12.0464, Lon: -77.0428}, Category: CategoryCommercial},
		{ID: "za-capetown", Name: "Port of Cape Town", Country: "South Africa", Position: geo.Coordinate{Lat: -33.9249, Lon: 18.4241}, Category: CategoryCommercial},
		{ID: "za-durban", Name: "Port of Durban", Country: "South Africa", Position: geo.Coordinate{Lat: -29.8587, Lon: 31.0218}, Category: CategoryCommercial},
		{ID: "ng-lagos", Name: "Port of Lagos", Country: "Nigeria", Position: geo.Coordinate{Lat: 6.5244, Lon: 3.3792}, Category: CategoryCommercial},
		{ID: "eg-alexandria", Name: "Port of Alexandria", Country: "Egypt", Position: geo.Coordinate{Lat: 31.2001, Lon: 29.9187}, Category: CategoryCommercial},
		{ID: "ma-casablanca", Name: "Port of Casablanca", Country: "Morocco", Position: geo.Coordinate{Lat: 33.5731, Lon: -7.5898}, Category: CategoryCommercial},
		{ID: "ke-mombasa", Name: "Port of Mombasa", Country: "Kenya", Position: geo.Coordinate{Lat: -4.0437, Lon: 39.6682}, Category: CategoryCommercial},
		{ID: "tz-daressalaam", Name: "Port of Dar es Salaam", Country: "Tanzania", Position: geo.Coordinate{Lat: -6.7924, Lon: 39.2083}, Category: CategoryCommercial},
		{ID: "ci-abidjan", Name: "Port of Abidjan", Country: "Ivory Coast", Position: geo.Coordinate{Lat: 5.3600, Lon: -4.0083}, Category: CategoryCommercial},
		{ID: "au-sydney", Name: "Port of Sydney", Country: "Australia", Position: geo.Coordinate{Lat: -33.8688, Lon: 151.2093}, Category: CategoryCommercial},
		{ID: "au-melbourne", Name: "Port of Melbourne", Country: "Australia", Position: geo.Coordinate{Lat: -37.8136, Lon: 144.9631}, Category: CategoryCommercial},
		{ID: "au-brisbane", Name: "Port of Brisbane", Country: "Australia", Position: geo.Coordinate{Lat: -27.4698, Lon: 153.0251}, Category: CategoryCommercial},
		{ID: "au-perth", Name: "Port of Perth", Country: "Australia", Position: geo.Coordinate{Lat: -31.9505, Lon: 115.8605}, Category: CategoryCommercial},
		{ID: "au-adelaide", Name: "Port of Adelaide", Country: "Australia", Position: geo.Coordinate{Lat: -34.9285, Lon: 138.6007}, Category: CategoryCommercial},
		{ID: "nz-auckland", Name: "Port of Auckland", Country: "New Zealand", Position: geo.Coordinate{Lat: -36.8485, Lon: 174.7633}, Category: CategoryCommercial},
		{ID: "nz-wellington", Name: "Port of Wellington", Country: "New Zealand", Position: geo.Coordinate{Lat: -41.2924, Lon: 174.7787}, Category: CategoryCommercial},
		{ID: "sa-jeddah", Name: "Port of Jeddah", Country: "Saudi Arabia", Position: geo.Coordinate{Lat: 21.4858, Lon: 39.1925}, Category: CategoryCommercial},
		{ID: "sa-dammam", Name: "Port of Dammam", Country: "Saudi Arabia", Position: geo.Coordinate{Lat: 26.4207, Lon: 50.0888}, Category: CategoryCommercial},
		{ID: "kw-kuwait", Name: "Port of Kuwait", Country: "Kuwait", Position: geo.Coordinate{Lat: 29.3759, Lon: 47.9774}, Category: CategoryCommercial},
		{ID: "qa-doha", Name: "Port of Doha", Country: "Qatar", Position: geo.Coordinate{Lat: 25.2854, Lon: 51.5310}, Category: CategoryCommercial},
		{ID: "om-muscat", Name: "Port of Muscat", Country: "Oman", Position: geo.Coordinate{Lat: 23.5880, Lon: 58.3829}, Category: CategoryCommercial},
		{ID: "no-bergen", Name: "Port of Bergen", Country: "Norway", Position: geo.Coordinate{Lat: 60.3913, Lon: 5.3221}, Category: CategoryFishing},
		{ID: "is-reykjavik", Name: "Port of Reykjavik", Country: "Iceland", Position: geo.Coordinate{Lat: 64.1466, Lon: -21.9426}, Category: CategoryFishing},
		{ID: "us-gloucester", Name: "Port of Gloucester", Country: "USA", Position: geo.Coordinate{Lat: 42.6159, Lon: -70.6620}, Category: CategoryFishing},
		{ID: "us-newbedford", Name: "Port of New Bedford", Country: "USA", Position: geo.Coordinate{Lat: 41.6362, Lon: -70.9342}, Category: CategoryFishing},
		{ID: "gb-grimsby", Name: "Port of Grimsby", Country: "UK", Position: geo.Coordinate{Lat: 53.5678, Lon: -0.0754}, Category: CategoryFishing},
		{ID: "gb-peterhead", Name: "Port of Peterhead", Country: "UK", Position: geo.Coordinate{Lat: 57.5089, Lon: -1.7842}, Category: CategoryFishing},
	}
}
