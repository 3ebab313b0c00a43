package models

const (
	OrderStatusPending   = "PENDIENTE"
	OrderStatusCompleted = "COMPLETADO"
	OrderStatusCancelled = "CANCELADO"
)

type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string `gorm:"unique;not null"          json:"email"`
	Password  string `gorm:"not null"                 json:"-"`
	Name      string `gorm:"not null"                 json:"nombre"`
	Surname   string `gorm:"not null"                 json:"apellido"`
	CreatedAt int64  `gorm:"autoCreateTime"           json:"creado"`
}

type Client struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"not null"                 json:"nombre"`
	Surname   string `gorm:"not null"                 json:"apellido"`
	Company   string `gorm:"not null"                 json:"empresa"`
	Email     string `gorm:"unique;not null"          json:"email"`
	Phone     string `json:"telefono"`
	SellerID  uint   `gorm:"index;not null"           json:"vendedor"`
	CreatedAt int64  `gorm:"autoCreateTime"           json:"creado"`
}

type Product struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"not null"                 json:"nombre"`
	Stock     uint    `gorm:"not null"                 json:"existencia"`
	Price     float64 `gorm:"not null"                 json:"precio"`
	CreatedAt int64   `gorm:"autoCreateTime"           json:"creado"`
}

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Items     []OrderItem `gorm:"foreignKey:OrderID"       json:"pedido"`
	Total     float64     `gorm:"not null"                 json:"total"`
	ClientID  uint        `gorm:"index;not null"           json:"cliente"`
	SellerID  uint        `gorm:"index;not null"           json:"vendedor"`
	Status    string      `gorm:"not null"                 json:"estado"`
	CreatedAt int64       `gorm:"autoCreateTime"           json:"creado"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"  json:"-"`
	OrderID   uint `gorm:"index;not null"            json:"-"`
	ProductID uint `gorm:"not null"                  json:"id"`
	Quantity  uint `gorm:"not null;check:quantity>0" json:"cantidad"`
}
