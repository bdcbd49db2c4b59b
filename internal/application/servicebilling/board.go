package servicebilling

import (
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

const unknownCustomer = "Unknown customer"

// Group asignaciones facturables de un cliente.
type Group struct {
	CustomerID    entity.ID
	CustomerName  string
	CustomerPhone string
	Assignments   []entity.Assignment
}

// Find devuelve la asignación con ese id dentro del grupo.
func (g *Group) Find(id entity.ID) (*entity.Assignment, bool) {
	for i := range g.Assignments {
		if g.Assignments[i].ID == id {
			return &g.Assignments[i], true
		}
	}
	return nil, false
}

// GroupBillable descarta las asignaciones ya facturadas y agrupa el resto por customer_id.
// Orden estable: nombre de cliente (sin distinguir mayúsculas) y luego id; dentro del grupo, el del backend.
func GroupBillable(assignments []entity.Assignment) (groups []Group, dropped int) {
	index := make(map[entity.ID]int)
	for _, a := range assignments {
		if !a.Billable() {
			dropped++
			continue
		}
		key := a.CustomerKey()
		i, ok := index[key]
		if !ok {
			g := Group{CustomerID: key, CustomerName: a.CustomerName()}
			if a.Customer != nil {
				g.CustomerPhone = a.Customer.Phone
			}
			if g.CustomerName == "" {
				g.CustomerName = unknownCustomer
			}
			groups = append(groups, g)
			i = len(groups) - 1
			index[key] = i
		}
		groups[i].Assignments = append(groups[i].Assignments, a)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		ni, nj := strings.ToLower(groups[i].CustomerName), strings.ToLower(groups[j].CustomerName)
		if ni != nj {
			return ni < nj
		}
		return groups[i].CustomerID < groups[j].CustomerID
	})
	return groups, dropped
}

// Selection ids de asignaciones marcadas en el tablero. Cada id es independiente;
// la agregación por cliente se hace al construir la vista.
type Selection struct {
	mu  sync.Mutex
	ids map[entity.ID]struct{}
}

// NewSelection selección vacía.
func NewSelection() *Selection {
	return &Selection{ids: make(map[entity.ID]struct{})}
}

// Set marca o desmarca ids.
func (s *Selection) Set(selected bool, ids ...entity.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if selected {
			s.ids[id] = struct{}{}
		} else {
			delete(s.ids, id)
		}
	}
}

// Has indica si el id está marcado.
func (s *Selection) Has(id entity.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Len cantidad de ids marcados.
func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Retain desmarca los ids que ya no aparecen en el tablero.
func (s *Selection) Retain(groups []Group) {
	present := make(map[entity.ID]struct{})
	for _, g := range groups {
		for _, a := range g.Assignments {
			present[a.ID] = struct{}{}
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.ids {
		if _, ok := present[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// InGroup asignaciones marcadas de un grupo, en el orden del grupo.
func (s *Selection) InGroup(g Group) []entity.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Assignment
	for _, a := range g.Assignments {
		if _, ok := s.ids[a.ID]; ok {
			out = append(out, a)
		}
	}
	return out
}

// BuildBoard vista del tablero con la vista previa de totales por cliente.
func BuildBoard(groups []Group, sel *Selection) *dto.BillingBoard {
	board := &dto.BillingBoard{Groups: make([]dto.CustomerGroup, 0, len(groups))}
	for _, g := range groups {
		selected := sel.InGroup(g)
		cg := dto.CustomerGroup{
			CustomerID:    g.CustomerID,
			CustomerName:  g.CustomerName,
			CustomerPhone: g.CustomerPhone,
			Rows:          make([]dto.BillableRow, 0, len(g.Assignments)),
			SelectedIDs:   make([]entity.ID, 0, len(selected)),
			Preview:       ComputeTotals(assignmentPrices(selected)...).DTO(),
		}
		for _, a := range selected {
			cg.SelectedIDs = append(cg.SelectedIDs, a.ID)
		}
		for i := range g.Assignments {
			a := &g.Assignments[i]
			cg.Rows = append(cg.Rows, dto.BillableRow{
				AssignmentID: a.ID,
				ServiceName:  a.ServiceName(),
				EmployeeName: a.EmployeeName(),
				Status:       a.Status,
				StartTime:    a.StartTime,
				Price:        dto.KES(a.LinePrice()),
				Selected:     sel.Has(a.ID),
			})
		}
		board.Count += len(g.Assignments)
		board.Groups = append(board.Groups, cg)
	}
	return board
}
