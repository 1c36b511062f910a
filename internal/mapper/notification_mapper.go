package mapper

import (
	"encoding/json"

	"eveshield-be/internal/entity"
	"eveshield-be/internal/model"

	"gorm.io/datatypes"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	var meta map[string]interface{}
	if len(n.Metadata) > 0 {
		// malformed metadata is dropped rather than failing the read
		_ = json.Unmarshal(n.Metadata, &meta)
	}
	return &entity.Notification{
		Id:         n.Id,
		UserId:     n.UserId,
		TypeCode:   n.TypeCode,
		Title:      n.Title,
		Message:    n.Message,
		EntityType: n.EntityType,
		EntityId:   n.EntityId,
		Metadata:   meta,
		IsRead:     n.IsRead,
		ReadAt:     n.ReadAt,
		CreatedAt:  n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) (*model.Notification, error) {
	if n == nil {
		return nil, nil
	}
	var meta datatypes.JSON
	if n.Metadata != nil {
		raw, err := json.Marshal(n.Metadata)
		if err != nil {
			return nil, err
		}
		meta = datatypes.JSON(raw)
	}
	return &model.Notification{
		Id:         n.Id,
		UserId:     n.UserId,
		TypeCode:   n.TypeCode,
		Title:      n.Title,
		Message:    n.Message,
		EntityType: n.EntityType,
		EntityId:   n.EntityId,
		Metadata:   meta,
		IsRead:     n.IsRead,
		ReadAt:     n.ReadAt,
		CreatedAt:  n.CreatedAt,
	}, nil
}

func (m *NotificationMapper) ToEntities(notifications []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, len(notifications))
	for i, n := range notifications {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
