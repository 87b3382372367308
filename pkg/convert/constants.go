package convert

// Format names accepted by Read and Write.
const (
	FormatGeoJSON = "geojson"
	FormatKML     = "kml"
	FormatGPX     = "gpx"
	FormatGeoRSS  = "georss"
	FormatGML     = "gml"
	FormatGML2    = "gml2"
	FormatCSV     = "csv"
	FormatText    = "text"
)
