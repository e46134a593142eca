package service

import (
	"fmt"
	"math"
	"strconv"

	"extractor/database"
	"extractor/database/model"
)

// FieldError reports a value that only fails once the query actually runs,
// so the controller can attach it back onto the offending form field.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// AssetService owns the asset store and the geo queries over it.
type AssetService struct{}

func (s *AssetService) SaveAsset(asset *model.Asset) error {
	db := database.GetDB()
	return db.Save(asset).Error
}

func (s *AssetService) GetAsset(id int) (*model.Asset, error) {
	db := database.GetDB()
	asset := &model.Asset{}
	err := db.Model(model.Asset{}).First(asset, id).Error
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *AssetService) AllAssets() ([]*model.Asset, error) {
	db := database.GetDB()
	assets := make([]*model.Asset, 0)
	err := db.Model(model.Asset{}).Order("created_at desc").Find(&assets).Error
	return assets, err
}

func (s *AssetService) CountAssets() (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.Asset{}).Count(&count).Error
	return count, err
}

// RunQuery returns the assets of the query's department within the given
// distance of its coordinate, narrowed by the optional type and capacity
// filters. Coordinates arrive as form strings; a value that does not parse
// comes back as a *FieldError naming the field.
func (s *AssetService) RunQuery(q *model.Query) ([]*model.Asset, error) {
	lat, err := parseCoordinate("latitude", q.Latitude)
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate("longitude", q.Longitude)
	if err != nil {
		return nil, err
	}
	distance, err := strconv.ParseFloat(q.Distance, 64)
	if err != nil || distance < 0 {
		return nil, &FieldError{Field: "distance", Msg: "Enter a valid distance in km."}
	}

	db := database.GetDB()
	candidates := make([]*model.Asset, 0)
	err = db.Model(model.Asset{}).
		Where("department = ?", q.Department).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	matches := make([]*model.Asset, 0)
	for _, asset := range candidates {
		assetLat, err := strconv.ParseFloat(asset.Latitude, 64)
		if err != nil {
			continue
		}
		assetLon, err := strconv.ParseFloat(asset.Longitude, 64)
		if err != nil {
			continue
		}
		if haversineKm(lat, lon, assetLat, assetLon) > distance {
			continue
		}
		if q.InputTextType != nil && (asset.InputTextType == nil || *asset.InputTextType != *q.InputTextType) {
			continue
		}
		if q.InputTextCapacity != nil && (asset.InputTextCapacity == nil || *asset.InputTextCapacity != *q.InputTextCapacity) {
			continue
		}
		if q.Year != nil && asset.CreatedAt.Format("2006") < *q.Year {
			continue
		}
		matches = append(matches, asset)
	}
	return matches, nil
}

// SaveQuery records an executed query for the user's profile page.
func (s *AssetService) SaveQuery(q *model.Query) error {
	db := database.GetDB()
	return db.Create(q).Error
}

func (s *AssetService) QueriesForUser(userId int) ([]*model.Query, error) {
	db := database.GetDB()
	queries := make([]*model.Query, 0)
	err := db.Model(model.Query{}).
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&queries).Error
	return queries, err
}

func parseCoordinate(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Msg: "Enter a valid coordinate."}
	}
	return f, nil
}

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance between two coordinates.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
