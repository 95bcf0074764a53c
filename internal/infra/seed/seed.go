// Package seed reads the reference tables (recipe catalog, disease exclusion table,
// seasonal fruit table) from a YAML document stored in a gocloud blob bucket.
package seed

import (
	"context"
	"fmt"
	"strings"

	"dietplan/internal/domain/entity"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gopkg.in/yaml.v3"
)

type document struct {
	Dishes     []dishRecord      `yaml:"dishes"`
	Exclusions []exclusionRecord `yaml:"exclusions"`
	Fruits     []fruitRecord     `yaml:"fruits"`
}

type nutritionRecord struct {
	Calories float64 `yaml:"calories"`
	Carbs    float64 `yaml:"carbs"`
	Protein  float64 `yaml:"protein"`
	Fat      float64 `yaml:"fat"`
	Sodium   float64 `yaml:"sodium"`
	Fiber    float64 `yaml:"fiber"`
}

type ingredientRecord struct {
	Name     string  `yaml:"name"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit"`
}

type dishRecord struct {
	Title           string             `yaml:"title"`
	DishType        string             `yaml:"dish_type"`
	MealType        string             `yaml:"meal_type"`
	Variety         string             `yaml:"variety"`
	Nutrition       nutritionRecord    `yaml:"nutrition"`
	Ingredients     []ingredientRecord `yaml:"ingredients"`
	AllergyTags     []string           `yaml:"allergy_tags"`
	DiseaseKeywords []string           `yaml:"disease_keywords"`
}

// exclusionRecord lists the foods one disease excludes.
type exclusionRecord struct {
	Disease  string   `yaml:"disease"`
	Severity string   `yaml:"severity"`
	Foods    []string `yaml:"foods"`
}

type fruitRecord struct {
	Name          string          `yaml:"name"`
	Months        []int           `yaml:"months"`
	ServingSize   float64         `yaml:"serving_size"`
	Unit          string          `yaml:"unit"`
	PerServing    nutritionRecord `yaml:"per_serving"`
	ChildFriendly bool            `yaml:"child_friendly"`
	AllergyTags   []string        `yaml:"allergy_tags"`
}

var validDishTypes = map[string]entity.DishType{
	"":      entity.DishTypeSingle,
	"rice":  entity.DishTypeRice,
	"side":  entity.DishTypeSide,
	"soup":  entity.DishTypeSoup,
	"snack": entity.DishTypeSnack,
}

var validMealTypes = map[string]entity.MealType{
	"":          "",
	"breakfast": entity.MealTypeBreakfast,
	"lunch":     entity.MealTypeLunch,
	"dinner":    entity.MealTypeDinner,
	"snack":     entity.MealTypeSnack,
}

// Load reads and parses the seed document stored under key in the bucket at bucketURL,
// e.g. "file:///srv/seed", "gs://my-bucket" or "s3://my-bucket?region=us-east-1".
func Load(ctx context.Context, bucketURL, key string) (*entity.Catalog, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open seed bucket %s", bucketURL)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read seed document %s", key)
	}

	return Parse(data)
}

// Parse decodes and validates a seed document. Dish titles and fruit names must be unique.
func Parse(data []byte) (*entity.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode seed document")
	}

	catalog := &entity.Catalog{
		Dishes:     make([]*entity.Dish, 0, len(doc.Dishes)),
		Exclusions: make([]entity.ExcludedFood, 0, len(doc.Exclusions)),
		Fruits:     make([]*entity.SeasonalFruit, 0, len(doc.Fruits)),
	}

	titles := make(map[string]struct{}, len(doc.Dishes))
	for i, rec := range doc.Dishes {
		dish, err := rec.toEntity(int64(i + 1))
		if err != nil {
			return nil, errors.Wrapf(err, "dish #%d", i+1)
		}
		if _, dup := titles[dish.Title]; dup {
			return nil, errors.Errorf("dish #%d: duplicate title %q", i+1, dish.Title)
		}
		titles[dish.Title] = struct{}{}
		catalog.Dishes = append(catalog.Dishes, dish)
	}

	for i, rec := range doc.Exclusions {
		if strings.TrimSpace(rec.Disease) == "" {
			return nil, errors.Errorf("exclusion #%d: disease is required", i+1)
		}
		for _, food := range rec.Foods {
			catalog.Exclusions = append(catalog.Exclusions, entity.ExcludedFood{
				DiseaseCode: strings.TrimSpace(rec.Disease),
				FoodName:    strings.TrimSpace(food),
				Severity:    rec.Severity,
			})
		}
	}

	names := make(map[string]struct{}, len(doc.Fruits))
	for i, rec := range doc.Fruits {
		fruit, err := rec.toEntity()
		if err != nil {
			return nil, errors.Wrapf(err, "fruit #%d", i+1)
		}
		if _, dup := names[fruit.Name]; dup {
			return nil, errors.Errorf("fruit #%d: duplicate name %q", i+1, fruit.Name)
		}
		names[fruit.Name] = struct{}{}
		catalog.Fruits = append(catalog.Fruits, fruit)
	}

	return catalog, nil
}

func (r dishRecord) toEntity(id int64) (*entity.Dish, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	dishType, ok := validDishTypes[strings.ToLower(strings.TrimSpace(r.DishType))]
	if !ok {
		return nil, fmt.Errorf("unknown dish type %q", r.DishType)
	}
	mealType, ok := validMealTypes[strings.ToLower(strings.TrimSpace(r.MealType))]
	if !ok {
		return nil, fmt.Errorf("unknown meal type %q", r.MealType)
	}

	ingredients := make([]entity.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, entity.Ingredient{
			Name:     strings.TrimSpace(ing.Name),
			Quantity: ing.Quantity,
			Unit:     strings.TrimSpace(ing.Unit),
		})
	}

	return &entity.Dish{
		ID:              id,
		Title:           title,
		DishType:        dishType,
		MealType:        mealType,
		Variety:         strings.TrimSpace(r.Variety),
		Nutrition:       r.Nutrition.toEntity(),
		Ingredients:     ingredients,
		AllergyTags:     r.AllergyTags,
		DiseaseKeywords: r.DiseaseKeywords,
	}, nil
}

func (r fruitRecord) toEntity() (*entity.SeasonalFruit, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	for _, m := range r.Months {
		if m < 1 || m > 12 {
			return nil, fmt.Errorf("month %d out of range", m)
		}
	}

	return &entity.SeasonalFruit{
		Name:          name,
		Months:        r.Months,
		ServingSize:   r.ServingSize,
		Unit:          strings.TrimSpace(r.Unit),
		PerServing:    r.PerServing.toEntity(),
		ChildFriendly: r.ChildFriendly,
		AllergyTags:   r.AllergyTags,
	}, nil
}

func (r nutritionRecord) toEntity() entity.Nutrition {
	return entity.Nutrition{
		Calories: r.Calories,
		Carbs:    r.Carbs,
		Protein:  r.Protein,
		Fat:      r.Fat,
		Sodium:   r.Sodium,
		Fiber:    r.Fiber,
	}
}
