// Package echoproc dispatches stored sonar datasets to the processing object
// for the echosounder that recorded them.
//
// A dataset is a single NetCDF file (.nc, classic or NetCDF4) or a Zarr
// directory store (.zarr) whose global keywords attribute names the
// instrument. echoproc reads that attribute and returns a *ProcessEK60,
// *ProcessEK80 or *ProcessAZFP.
//
// # Quick Start
//
//	p, err := echoproc.Process("D20190101-T000000.nc")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s (%s) from %s\n", p.Model(), p.Manufacturer(), p.Path())
//
// # Supported Instruments
//
//   - EK60: Simrad narrowband split-beam echosounder
//   - EK80: Simrad wideband echosounder
//   - AZFP: ASL Acoustic Zooplankton Fish Profiler
//
// # Error Handling
//
// Dispatch fails in three distinguishable ways, each a typed error that
// matches a sentinel under errors.Is:
//
//   - ErrInvalidFormat: the path is not .nc or .zarr (no I/O is done)
//   - ErrIncompatibleFile: the dataset has no keywords attribute
//   - ErrUnsupportedType: keywords is not one of EK60, EK80, AZFP
//
// Anything else is an I/O failure or a CorruptedFileError from the loader.
// Classify maps any error to an ErrorKind for reporting.
//
// Processing objects may carry Warnings, for instance when built directly
// with NewProcessEK80 on a file whose keywords say EK60. WithStrict turns
// those warnings into errors.
//
// # Batches
//
// Discover finds datasets under a directory tree. ProcessMany dispatches
// them concurrently and fails fast; ProcessAll reports every outcome:
//
//	paths, _ := echoproc.Discover("/data/cruise-2019")
//	for _, r := range echoproc.ProcessAll(ctx, paths) {
//		fmt.Println(r.Path, r.Kind())
//	}
//
// # Resources
//
// Every dataset handle opened by echoproc is closed before the call returns,
// on success and failure alike. Processing objects hold no open handles.
package echoproc
