package write

// Tags are the InfluxDB tags shared by all points of a simulation run.
type Tags map[string]string

// With returns a copy of the tags with one more entry.
func (t Tags) With(key string, value string) Tags {
	tags := make(Tags, len(t)+1)
	for k, v := range t {
		tags[k] = v
	}
	tags[key] = value
	return tags
}
