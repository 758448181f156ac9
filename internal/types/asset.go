package types

import "github.com/samber/lo"

type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "available"
	AssetStatusAssigned    AssetStatus = "assigned"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
)

func (s AssetStatus) IsValid() bool {
	return lo.Contains([]AssetStatus{
		AssetStatusAvailable,
		AssetStatusAssigned,
		AssetStatusMaintenance,
		AssetStatusRetired,
	}, s)
}

type AssetCategory string

const (
	AssetCategoryLaptop    AssetCategory = "laptop"
	AssetCategoryMonitor   AssetCategory = "monitor"
	AssetCategoryPhone     AssetCategory = "phone"
	AssetCategoryFurniture AssetCategory = "furniture"
	AssetCategoryVehicle   AssetCategory = "vehicle"
	AssetCategoryOther     AssetCategory = "other"
)

func (c AssetCategory) IsValid() bool {
	return lo.Contains([]AssetCategory{
		AssetCategoryLaptop,
		AssetCategoryMonitor,
		AssetCategoryPhone,
		AssetCategoryFurniture,
		AssetCategoryVehicle,
		AssetCategoryOther,
	}, c)
}
