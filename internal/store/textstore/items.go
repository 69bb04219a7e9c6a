package textstore

import "fmt"

// LoadItems returns the lines of the items file verbatim. A missing file
// means there are no items yet.
func (s Store) LoadItems() ([]string, error) {
	p, err := s.ItemsPath()
	if err != nil {
		return nil, err
	}
	lines, err := readLines(p)
	if err != nil {
		if isNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read items: %w", err)
	}
	return lines, nil
}

// SaveItems overwrites the items file with one line per item, in order.
func (s Store) SaveItems(items []string) error {
	p, err := s.ItemsPath()
	if err != nil {
		return err
	}
	if err := writeLines(p, items); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}
