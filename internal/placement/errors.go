package placement

import "fmt"

// PlacementError возвращается, когда за отведенное число попыток
// не нашлось размещения, прошедшего условие отбора.
type PlacementError struct {
	AssetID string
	Trials  int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("failed to place asset %q after %d trials", e.AssetID, e.Trials)
}

// InvalidAxisError возвращается при неизвестном имени оси вращения
type InvalidAxisError struct {
	Axis string
}

func (e *InvalidAxisError) Error() string {
	return fmt.Sprintf("invalid rotation axis %q (expected X, Y or Z)", e.Axis)
}
