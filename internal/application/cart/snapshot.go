package cart

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rocketshoes-cart/internal/domain"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
)

// SnapshotVersion versión del esquema que se escribe en el almacenamiento.
const SnapshotVersion = 1

// snapshot formato persistido: {"version":1,"items":[...]}.
// La versión 0 es el arreglo sin envoltorio que guardaban las versiones anteriores de la tienda.
type snapshot struct {
	Version int            `json:"version"`
	Items   []snapshotItem `json:"items"`
}

type snapshotItem struct {
	ID     int         `json:"id"`
	Title  string      `json:"title"`
	Price  json.Number `json:"price"`
	Image  string      `json:"image"`
	Amount int         `json:"amount"`
}

// EncodeSnapshot serializa el carrito completo en el formato versionado.
func EncodeSnapshot(items []entity.CartItem) (string, error) {
	out := snapshot{Version: SnapshotVersion, Items: make([]snapshotItem, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, snapshotItem{
			ID:     it.ID,
			Title:  it.Title,
			Price:  json.Number(it.Price.String()),
			Image:  it.Image,
			Amount: it.Amount,
		})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("serializar snapshot: %w", err)
	}
	return string(b), nil
}

// DecodeSnapshot reconstruye el carrito. Cualquier valor que no cumpla el esquema
// (JSON inválido, versión desconocida, id <= 0, amount < 1, ids repetidos)
// devuelve domain.ErrMalformedSnapshot.
func DecodeSnapshot(raw string) ([]entity.CartItem, error) {
	data := bytes.TrimSpace([]byte(raw))
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: vacío", domain.ErrMalformedSnapshot)
	}

	var snap snapshot
	switch data[0] {
	case '[':
		if err := strictUnmarshal(data, &snap.Items); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSnapshot, err)
		}
	case '{':
		if err := strictUnmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSnapshot, err)
		}
		if snap.Version != SnapshotVersion {
			return nil, fmt.Errorf("%w: versión %d no soportada", domain.ErrMalformedSnapshot, snap.Version)
		}
	default:
		return nil, fmt.Errorf("%w: no es un arreglo ni un objeto", domain.ErrMalformedSnapshot)
	}

	items := make([]entity.CartItem, 0, len(snap.Items))
	seen := make(map[int]struct{}, len(snap.Items))
	for i, it := range snap.Items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("%w: item %d con id %d", domain.ErrMalformedSnapshot, i, it.ID)
		}
		if it.Amount < 1 {
			return nil, fmt.Errorf("%w: item %d con amount %d", domain.ErrMalformedSnapshot, it.ID, it.Amount)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: id %d repetido", domain.ErrMalformedSnapshot, it.ID)
		}
		seen[it.ID] = struct{}{}

		price := decimal.Zero
		if it.Price != "" {
			p, err := decimal.NewFromString(it.Price.String())
			if err != nil {
				return nil, fmt.Errorf("%w: precio de %d: %v", domain.ErrMalformedSnapshot, it.ID, err)
			}
			price = p
		}
		items = append(items, entity.CartItem{
			ID:     it.ID,
			Title:  it.Title,
			Price:  price,
			Image:  it.Image,
			Amount: it.Amount,
		})
	}
	return items, nil
}

// strictUnmarshal decodifica números como json.Number y rechaza basura al final.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("contenido adicional tras el JSON")
	}
	return nil
}
