package events

import "github.com/atomicstack/font-picker/internal/logging"

type FilterTracer struct{}

type PickerTracer struct{}

type CatalogTracer struct{}

var (
	Filter  = FilterTracer{}
	Picker  = PickerTracer{}
	Catalog = CatalogTracer{}
)

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Commit(filter string) {
	logging.Trace("filter.commit", map[string]interface{}{"filter": filter})
}

func (PickerTracer) Open() {
	logging.Trace("picker.open", nil)
}

func (PickerTracer) Close() {
	logging.Trace("picker.close", nil)
}

func (PickerTracer) Hover(id int, label string) {
	logging.Trace("picker.hover", map[string]interface{}{"id": id, "label": label})
}

func (PickerTracer) Select(id int, label string) {
	logging.Trace("picker.select", map[string]interface{}{"id": id, "label": label})
}

func (PickerTracer) Correction(kind string, id int) {
	logging.Trace("picker.correction", map[string]interface{}{"kind": kind, "id": id})
}

func (CatalogTracer) Reload(count int, version uint64) {
	logging.Trace("catalog.reload", map[string]interface{}{"fonts": count, "version": version})
}

func (CatalogTracer) ReloadError(err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.reload-error", map[string]interface{}{"error": err.Error()})
}
