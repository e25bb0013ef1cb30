package audio

// DeviceReport describes the default input device for diagnostics.
type DeviceReport struct {
	Name       string
	Format     string
	Channels   int
	SampleRate int
}

// ProbeDefaultInput opens and immediately closes the default input device,
// reporting its native configuration. Used by the doctor command.
func ProbeDefaultInput() (*DeviceReport, error) {
	stream, err := openDefaultInputStream()
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	info := stream.Info()
	return &DeviceReport{
		Name:       info.deviceName,
		Format:     info.format.String(),
		Channels:   info.channels,
		SampleRate: info.sampleRate,
	}, nil
}
