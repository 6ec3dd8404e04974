package models

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	surreal "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Типизированные идентификаторы записей. В JSON сериализуются как голый uuid,
// в CBOR — как RecordID SurrealDB (тег 8, [таблица, id]), поэтому одна и та же
// модель годится и для ответа API, и для записи в хранилище.

const (
	tableUsers = "users"
	tablePosts = "posts"
)

type UserID struct{ uuid uuid.UUID }

func NewUserID() UserID { return UserID{uuid: uuid.New()} }

func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("невалидный id пользователя: %w", err)
	}
	return UserID{uuid: id}, nil
}

func (u UserID) String() string { return u.uuid.String() }
func (u UserID) IsZero() bool   { return u.uuid == uuid.Nil }

func (u UserID) RecordID() surreal.RecordID {
	return surreal.RecordID{Table: tableUsers, ID: u.uuid.String()}
}

func (u UserID) MarshalJSON() ([]byte, error) { return json.Marshal(u.uuid.String()) }

func (u *UserID) UnmarshalJSON(data []byte) error { return unmarshalJSONID(data, &u.uuid) }

func (u UserID) MarshalCBOR() ([]byte, error) { return marshalCBORID(tableUsers, u.uuid) }

func (u *UserID) UnmarshalCBOR(data []byte) error { return unmarshalCBORID(data, tableUsers, &u.uuid) }

type PostID struct{ uuid uuid.UUID }

func NewPostID() PostID { return PostID{uuid: uuid.New()} }

func ParsePostID(s string) (PostID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PostID{}, fmt.Errorf("невалидный id поста: %w", err)
	}
	return PostID{uuid: id}, nil
}

func (p PostID) String() string { return p.uuid.String() }
func (p PostID) IsZero() bool   { return p.uuid == uuid.Nil }

func (p PostID) RecordID() surreal.RecordID {
	return surreal.RecordID{Table: tablePosts, ID: p.uuid.String()}
}

func (p PostID) MarshalJSON() ([]byte, error) { return json.Marshal(p.uuid.String()) }

func (p *PostID) UnmarshalJSON(data []byte) error { return unmarshalJSONID(data, &p.uuid) }

func (p PostID) MarshalCBOR() ([]byte, error) { return marshalCBORID(tablePosts, p.uuid) }

func (p *PostID) UnmarshalCBOR(data []byte) error { return unmarshalCBORID(data, tablePosts, &p.uuid) }

// CommentID — идентификатор вложенного комментария. Комментарий не является
// отдельной записью хранилища, поэтому и в JSON, и в CBOR это просто uuid.
type CommentID struct{ uuid uuid.UUID }

func NewCommentID() CommentID { return CommentID{uuid: uuid.New()} }

func (c CommentID) String() string { return c.uuid.String() }
func (c CommentID) IsZero() bool   { return c.uuid == uuid.Nil }

func (c CommentID) MarshalJSON() ([]byte, error) { return json.Marshal(c.uuid.String()) }

func (c *CommentID) UnmarshalJSON(data []byte) error { return unmarshalJSONID(data, &c.uuid) }

func (c CommentID) MarshalCBOR() ([]byte, error) { return cbor.Marshal(c.uuid.String()) }

func (c *CommentID) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	c.uuid = id
	return nil
}

func unmarshalJSONID(data []byte, target *uuid.UUID) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	*target = id
	return nil
}

func marshalCBORID(table string, id uuid.UUID) ([]byte, error) {
	return cbor.Marshal(cbor.Tag{
		Number:  8, // RecordID
		Content: []any{table, id.String()},
	})
}

func unmarshalCBORID(data []byte, expectedTable string, target *uuid.UUID) error {
	if len(data) == 0 {
		return fmt.Errorf("пустые CBOR-данные")
	}

	var tag cbor.Tag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("не удалось разобрать CBOR-тег: %w", err)
	}
	if tag.Number != 8 {
		return fmt.Errorf("ожидался тег RecordID (8), получен %d", tag.Number)
	}

	arr, ok := tag.Content.([]any)
	if !ok || len(arr) != 2 {
		return fmt.Errorf("невалидный формат RecordID: ожидался массив [таблица, id]")
	}
	table, ok := arr[0].(string)
	if !ok || table != expectedTable {
		return fmt.Errorf("ожидалась таблица %s, получено %v", expectedTable, arr[0])
	}
	idStr, ok := arr[1].(string)
	if !ok {
		return fmt.Errorf("невалидный формат RecordID: id должен быть строкой")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return fmt.Errorf("невалидный uuid в RecordID: %w", err)
	}
	*target = id
	return nil
}
