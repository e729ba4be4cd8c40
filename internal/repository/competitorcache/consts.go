package competitorcache

const (
	// collection name
	competitorCacheNode string = "competitorCache"

	// Fields' name and path
	ProductNameFieldPath  string = "productName"
	ManufacturerFieldPath string = "manufacturer"
	NamesFieldPath        string = "names"
	CreatedAtFieldPath    string = "createdAt"
)
