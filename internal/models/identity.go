package models

// Identifiable is implemented by every persisted aggregate so generic code
// can read and pin primary keys without reflection.
type Identifiable interface {
	GetID() uint
	SetID(id uint)
}

func (u *User) GetID() uint   { return u.ID }
func (u *User) SetID(id uint) { u.ID = id }

func (p *Post) GetID() uint   { return p.ID }
func (p *Post) SetID(id uint) { p.ID = id }

func (c *Collection) GetID() uint   { return c.ID }
func (c *Collection) SetID(id uint) { c.ID = id }

func (c *Comment) GetID() uint   { return c.ID }
func (c *Comment) SetID(id uint) { c.ID = id }

func (t *Technology) GetID() uint   { return t.ID }
func (t *Technology) SetID(id uint) { t.ID = id }

func (m *Media) GetID() uint   { return m.ID }
func (m *Media) SetID(id uint) { m.ID = id }
