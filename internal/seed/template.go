package seed

import "specwriter/internal/models"

// DefaultCategories 默认模式的分类和字段模板
// 首次播种和模式重置共用同一份模板
func DefaultCategories() []models.SchemaCategory {
	return []models.SchemaCategory{
		{
			Name:         "General Information",
			Description:  "Basic facts about the project",
			DisplayOrder: 1,
			Fields: []models.SchemaField{
				{
					FieldName:       "Project Title",
					DataType:        models.DataTypeText,
					IsRequired:      true,
					PlaceholderText: "Short descriptive title",
					DisplayOrder:    1,
				},
				{
					FieldName:       "Project Summary",
					DataType:        models.DataTypeTextarea,
					IsRequired:      true,
					PlaceholderText: "What is being built and why",
					DisplayOrder:    2,
				},
				{
					FieldName:    "Target Delivery Date",
					DataType:     models.DataTypeDate,
					DisplayOrder: 3,
				},
				{
					FieldName:    "Project Scale",
					DataType:     models.DataTypeRadio,
					IsRequired:   true,
					Options:      []string{"Small", "Medium", "Large"},
					DisplayOrder: 4,
				},
			},
		},
		{
			Name:         "Business Requirements",
			Description:  "What the business needs from the project",
			DisplayOrder: 2,
			Fields: []models.SchemaField{
				{
					FieldName:        "Basic Business Requirements",
					DataType:         models.DataTypeList,
					ListTargetEntity: models.ListTargetBasicBusinessRequirement,
					DisplayOrder:     1,
				},
				{
					FieldName:        "Business Tasks",
					DataType:         models.DataTypeList,
					ListTargetEntity: models.ListTargetBusinessTask,
					DisplayOrder:     2,
				},
			},
		},
		{
			Name:         "Contractor Requirements",
			Description:  "Conditions the contractor must satisfy",
			DisplayOrder: 3,
			Fields: []models.SchemaField{
				{
					FieldName:        "Contractor Requirements",
					DataType:         models.DataTypeList,
					ListTargetEntity: models.ListTargetContractorRequirement,
					DisplayOrder:     1,
				},
				{
					FieldName:    "Required Competencies",
					DataType:     models.DataTypeCheckbox,
					Options:      []string{"Web Development", "Mobile Development", "Integrations", "Data Migration", "Design"},
					DisplayOrder: 2,
				},
			},
		},
		{
			Name:         "Deliverables",
			Description:  "Expected results and acceptance",
			DisplayOrder: 4,
			Fields: []models.SchemaField{
				{
					FieldName:        "Deliverables",
					DataType:         models.DataTypeList,
					ListTargetEntity: models.ListTargetDeliverable,
					DisplayOrder:     1,
				},
				{
					FieldName:       "Acceptance Criteria",
					DataType:        models.DataTypeTextarea,
					PlaceholderText: "How the result will be accepted",
					DisplayOrder:    2,
				},
			},
		},
	}
}
